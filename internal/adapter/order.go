package adapter

import (
	"fmt"
	"strings"

	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/archie1710/TRADING-BOT/pkg/exception"
	"github.com/yanun0323/decimal"
)

// OrderRequest is one operator order. Price is only meaningful for limit and
// stop limit kinds, StopPrice only for stop limit.
type OrderRequest struct {
	Kind        enum.OrderKind
	Symbol      string
	Side        enum.OrderSide
	Quantity    decimal.Decimal
	Price       NullDecimal
	StopPrice   NullDecimal
	TimeInForce enum.OrderTimeInForce
}

func NewMarketOrderRequest(symbol string, side enum.OrderSide, quantity decimal.Decimal) OrderRequest {
	return OrderRequest{
		Kind:     enum.OrderKindMarket,
		Symbol:   NormalizeSymbol(symbol),
		Side:     side,
		Quantity: quantity,
	}
}

func NewLimitOrderRequest(symbol string, side enum.OrderSide, quantity, price decimal.Decimal) OrderRequest {
	return OrderRequest{
		Kind:        enum.OrderKindLimit,
		Symbol:      NormalizeSymbol(symbol),
		Side:        side,
		Quantity:    quantity,
		Price:       NewNullDecimal(price),
		TimeInForce: enum.OrderTimeInForceGTC,
	}
}

// NewStopLimitOrderRequest builds a stop limit order. No ordering between the
// two prices is enforced here, the exchange decides feasibility.
func NewStopLimitOrderRequest(symbol string, side enum.OrderSide, quantity, limitPrice, triggerPrice decimal.Decimal) OrderRequest {
	return OrderRequest{
		Kind:        enum.OrderKindStopLimit,
		Symbol:      NormalizeSymbol(symbol),
		Side:        side,
		Quantity:    quantity,
		Price:       NewNullDecimal(limitPrice),
		StopPrice:   NewNullDecimal(triggerPrice),
		TimeInForce: enum.OrderTimeInForceGTC,
	}
}

// NormalizeSymbol trims and upper-cases an instrument identifier.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Validate is the last check before a request leaves the process.
func (req OrderRequest) Validate() error {
	if !req.Kind.IsAvailable() {
		return fmt.Errorf("%w: unknown kind %d", exception.ErrOrderInvalidRequest, req.Kind)
	}

	if len(req.Symbol) == 0 {
		return fmt.Errorf("%w: symbol is empty", exception.ErrOrderInvalidRequest)
	}

	if !req.Side.IsAvailable() {
		return fmt.Errorf("%w: unknown side %d", exception.ErrOrderInvalidRequest, req.Side)
	}

	if !req.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be > 0, got %s", exception.ErrOrderInvalidRequest, req.Quantity)
	}

	if req.Kind == enum.OrderKindLimit || req.Kind == enum.OrderKindStopLimit {
		if !req.Price.Valid || !req.Price.Decimal.IsPositive() {
			return fmt.Errorf("%w: price must be > 0 for %s orders", exception.ErrOrderInvalidRequest, req.Kind)
		}
	}

	if req.Kind == enum.OrderKindStopLimit {
		if !req.StopPrice.Valid || !req.StopPrice.Decimal.IsPositive() {
			return fmt.Errorf("%w: stop price must be > 0 for %s orders", exception.ErrOrderInvalidRequest, req.Kind)
		}
	}

	return nil
}

// Params builds the exchange payload for the request kind.
func (req OrderRequest) Params() (OrderParams, error) {
	params := OrderParams{
		Symbol:   NormalizeSymbol(req.Symbol),
		Side:     req.Side,
		Type:     req.Kind.WireType(),
		Quantity: req.Quantity,
	}

	switch req.Kind {
	case enum.OrderKindMarket:
	case enum.OrderKindLimit:
		params.Price = req.Price
		params.TimeInForce = enum.OrderTimeInForceGTC
	case enum.OrderKindStopLimit:
		params.Price = req.Price
		params.StopPrice = req.StopPrice
		params.TimeInForce = enum.OrderTimeInForceGTC
	default:
		return OrderParams{}, exception.ErrOrderUnsupportedKind
	}

	return params, nil
}
