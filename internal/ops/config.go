package ops

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/archie1710/TRADING-BOT/internal/adapter"
	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/archie1710/TRADING-BOT/internal/logger"
	"github.com/archie1710/TRADING-BOT/pkg/exception"
	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
)

const (
	EnvAPIKey       = "BINANCE_API_KEY"
	EnvAPISecret    = "BINANCE_API_SECRET"
	EnvTestnet      = "BINANCE_TESTNET"
	EnvBaseURL      = "BINANCE_BASE_URL"
	EnvRecvWindowMs = "BINANCE_RECV_WINDOW_MS"
	EnvTimeoutMs    = "BINANCE_TIMEOUT_MS"
	EnvLogFile      = "BOT_LOG_FILE"
	EnvLogConsole   = "BOT_LOG_CONSOLE"
	EnvLogLevel     = "BOT_LOG_LEVEL"

	defaultEnvFile    = ".env"
	defaultRecvWindow = 5 * time.Second
	defaultTimeout    = 15 * time.Second
	maxRecvWindow     = 60 * time.Second
)

// FileConfig mirrors the JSON config layout. Credentials are not part of it.
type FileConfig struct {
	Exchange ExchangeConfig `json:"exchange"`
	Log      LogConfig      `json:"log"`
}

// ExchangeConfig selects the venue deployment.
type ExchangeConfig struct {
	Testnet      *bool  `json:"testnet"`
	BaseURL      string `json:"baseUrl"`
	RecvWindowMs int64  `json:"recvWindowMs"`
	TimeoutMs    int64  `json:"timeoutMs"`
}

// LogConfig describes the log trail.
type LogConfig struct {
	File    string `json:"file"`
	Console *bool  `json:"console"`
	Level   string `json:"level"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Token       adapter.Token
	Environment enum.Environment
	BaseURL     string
	RecvWindow  time.Duration
	Timeout     time.Duration
	Log         logger.Config
}

// Default targets the testnet and logs to trading_bot.log and stdout.
func Default() Loaded {
	return Loaded{
		Environment: enum.EnvironmentTestnet,
		RecvWindow:  defaultRecvWindow,
		Timeout:     defaultTimeout,
		Log:         logger.DefaultConfig(),
	}
}

// Load resolves configuration. Priority: environment > env file > config
// file > defaults. Empty configPath skips the JSON file; empty envPath reads
// ./.env when present.
func Load(configPath, envPath string) (Loaded, error) {
	loaded := Default()

	if len(configPath) != 0 {
		cfg, err := readFileConfig(configPath)
		if err != nil {
			return Loaded{}, err
		}
		applyFileConfig(&loaded, cfg)
	}

	dotenv, err := readEnvFile(envPath)
	if err != nil {
		return Loaded{}, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && len(v) != 0 {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := applyEnv(&loaded, lookup); err != nil {
		return Loaded{}, err
	}

	if err := loaded.Validate(); err != nil {
		return Loaded{}, err
	}

	return loaded, nil
}

func readFileConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, err
	}
	var cfg FileConfig
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	if len(path) == 0 {
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return nil, nil
		}
		path = defaultEnvFile
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}

func applyFileConfig(loaded *Loaded, cfg FileConfig) {
	if cfg.Exchange.Testnet != nil {
		loaded.Environment = enum.EnvironmentFromTestnet(*cfg.Exchange.Testnet)
	}
	if len(cfg.Exchange.BaseURL) != 0 {
		loaded.BaseURL = cfg.Exchange.BaseURL
	}
	if cfg.Exchange.RecvWindowMs != 0 {
		loaded.RecvWindow = time.Duration(cfg.Exchange.RecvWindowMs) * time.Millisecond
	}
	if cfg.Exchange.TimeoutMs != 0 {
		loaded.Timeout = time.Duration(cfg.Exchange.TimeoutMs) * time.Millisecond
	}
	if len(cfg.Log.File) != 0 {
		loaded.Log.File = cfg.Log.File
	}
	if cfg.Log.Console != nil {
		loaded.Log.Console = *cfg.Log.Console
	}
	if len(cfg.Log.Level) != 0 {
		loaded.Log.Level = cfg.Log.Level
	}
}

func applyEnv(loaded *Loaded, lookup func(string) (string, bool)) error {
	key, _ := lookup(EnvAPIKey)
	secret, _ := lookup(EnvAPISecret)
	loaded.Token = adapter.NewToken(key, secret)

	if v, ok := lookup(EnvTestnet); ok && len(v) != 0 {
		testnet, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTestnet, err)
		}
		loaded.Environment = enum.EnvironmentFromTestnet(testnet)
	}

	if v, ok := lookup(EnvBaseURL); ok && len(v) != 0 {
		loaded.BaseURL = v
	}

	if v, ok := lookup(EnvRecvWindowMs); ok && len(v) != 0 {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRecvWindowMs, err)
		}
		loaded.RecvWindow = time.Duration(ms) * time.Millisecond
	}

	if v, ok := lookup(EnvTimeoutMs); ok && len(v) != 0 {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeoutMs, err)
		}
		loaded.Timeout = time.Duration(ms) * time.Millisecond
	}

	if v, ok := lookup(EnvLogFile); ok && len(v) != 0 {
		loaded.Log.File = v
	}

	if v, ok := lookup(EnvLogConsole); ok && len(v) != 0 {
		console, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogConsole, err)
		}
		loaded.Log.Console = console
	}

	if v, ok := lookup(EnvLogLevel); ok && len(v) != 0 {
		loaded.Log.Level = v
	}

	return nil
}

// Validate checks everything except credentials, which may still be
// collected interactively.
func (l Loaded) Validate() error {
	if !l.Environment.IsAvailable() {
		return fmt.Errorf("%w: environment", exception.ErrInvalidArgument)
	}
	if _, err := logger.ParseLevel(l.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", err, l.Log.Level)
	}
	if l.RecvWindow <= 0 || l.RecvWindow > maxRecvWindow {
		return fmt.Errorf("%w: %s must be in (0, %s]", exception.ErrConfigInvalidRecvWindow, l.RecvWindow, maxRecvWindow)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("%w: %s", exception.ErrConfigInvalidTimeout, l.Timeout)
	}
	if len(l.BaseURL) != 0 {
		u, err := url.Parse(l.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || len(u.Host) == 0 {
			return fmt.Errorf("%w: %q", exception.ErrConfigInvalidBaseURL, l.BaseURL)
		}
	}
	return nil
}

// RequireToken reports whether credentials are usable.
func (l Loaded) RequireToken() error {
	if l.Token.IsEmpty() {
		return exception.ErrConfigMissingCredentials
	}
	return nil
}
