package prompt

import (
	"github.com/archie1710/TRADING-BOT/internal/adapter"
	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/archie1710/TRADING-BOT/pkg/exception"
)

// OrderRequest walks the operator through one order. Prices are only asked
// for the kinds that need them; a stop limit order asks the stop price first.
func OrderRequest(p *Prompter) (adapter.OrderRequest, error) {
	symbol, err := Value(p, "Enter Symbol (e.g., BTCUSDT): ", String)
	if err != nil {
		return adapter.OrderRequest{}, err
	}

	side, err := Side(p, "Side (BUY/SELL): ")
	if err != nil {
		return adapter.OrderRequest{}, err
	}

	kind, err := Kind(p, "Order Type (MARKET/LIMIT/STOP_LIMIT): ")
	if err != nil {
		return adapter.OrderRequest{}, err
	}

	quantity, err := Value(p, "Quantity: ", PositiveDecimal)
	if err != nil {
		return adapter.OrderRequest{}, err
	}

	switch kind {
	case enum.OrderKindMarket:
		return adapter.NewMarketOrderRequest(symbol, side, quantity), nil
	case enum.OrderKindLimit:
		price, err := Value(p, "Limit Price: ", PositiveDecimal)
		if err != nil {
			return adapter.OrderRequest{}, err
		}
		return adapter.NewLimitOrderRequest(symbol, side, quantity, price), nil
	case enum.OrderKindStopLimit:
		stopPrice, err := Value(p, "Stop Price: ", PositiveDecimal)
		if err != nil {
			return adapter.OrderRequest{}, err
		}
		limitPrice, err := Value(p, "Limit Price: ", PositiveDecimal)
		if err != nil {
			return adapter.OrderRequest{}, err
		}
		return adapter.NewStopLimitOrderRequest(symbol, side, quantity, limitPrice, stopPrice), nil
	default:
		return adapter.OrderRequest{}, exception.ErrOrderUnsupportedKind
	}
}
