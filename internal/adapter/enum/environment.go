package enum

// Environment selects which exchange deployment a session talks to.
type Environment uint8

const (
	_environment_beg Environment = iota
	EnvironmentProduction
	EnvironmentTestnet
	_environment_end
)

func (e Environment) IsAvailable() bool {
	return e > _environment_beg && e < _environment_end
}

func (e Environment) String() string {
	switch e {
	case EnvironmentProduction:
		return "production"
	case EnvironmentTestnet:
		return "testnet"
	default:
		return ""
	}
}

// EnvironmentFromTestnet maps the testnet flag used by configuration.
func EnvironmentFromTestnet(testnet bool) Environment {
	if testnet {
		return EnvironmentTestnet
	}
	return EnvironmentProduction
}
