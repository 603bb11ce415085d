package adapter

import (
	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/yanun0323/decimal"
)

// OrderParams is the venue order payload. Zero TimeInForce and invalid
// optional prices are omitted from the wire.
type OrderParams struct {
	Symbol      string
	Side        enum.OrderSide
	Type        enum.OrderType
	Quantity    decimal.Decimal
	Price       NullDecimal
	TimeInForce enum.OrderTimeInForce
	StopPrice   NullDecimal
}
