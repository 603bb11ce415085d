package adapter

import "github.com/yanun0323/decimal"

// NullDecimal is a decimal that may be absent from the wire.
type NullDecimal struct {
	Decimal decimal.Decimal
	Valid   bool
}

func NewNullDecimal(d decimal.Decimal) NullDecimal {
	return NullDecimal{
		Decimal: d,
		Valid:   true,
	}
}

func (n NullDecimal) String() string {
	if !n.Valid {
		return ""
	}
	return n.Decimal.String()
}
