package prompt

import (
	"io"
	"strings"
	"testing"

	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRequest(t *testing.T) {
	t.Run("market", func(t *testing.T) {
		p, out := newTestPrompter("btcusdt", "buy", "market", "0.01")

		req, err := OrderRequest(p)
		require.NoError(t, err)
		assert.Equal(t, enum.OrderKindMarket, req.Kind)
		assert.Equal(t, "BTCUSDT", req.Symbol)
		assert.Equal(t, enum.OrderSideBuy, req.Side)
		assert.Equal(t, "0.01", req.Quantity.String())
		assert.False(t, req.Price.Valid)
		assert.NotContains(t, out.String(), "Price")
	})

	t.Run("limit with retries", func(t *testing.T) {
		p, out := newTestPrompter("ethusdt", "short", "sell", "limit", "-1", "2", "", "3100.5")

		req, err := OrderRequest(p)
		require.NoError(t, err)
		assert.Equal(t, enum.OrderKindLimit, req.Kind)
		assert.Equal(t, enum.OrderSideSell, req.Side)
		assert.Equal(t, "3100.5", req.Price.Decimal.String())
		assert.Equal(t, enum.OrderTimeInForceGTC, req.TimeInForce)
		assert.Equal(t, 3, strings.Count(out.String(), "Invalid input: "))
	})

	t.Run("stop limit asks stop price first", func(t *testing.T) {
		p, out := newTestPrompter("btcusdt", "SELL", "stop_limit", "0.5", "58500", "58000")

		req, err := OrderRequest(p)
		require.NoError(t, err)
		assert.Equal(t, enum.OrderKindStopLimit, req.Kind)
		assert.Equal(t, "58500", req.StopPrice.Decimal.String())
		assert.Equal(t, "58000", req.Price.Decimal.String())
		assert.Less(t, strings.Index(out.String(), "Stop Price: "), strings.Index(out.String(), "Limit Price: "))
	})

	t.Run("input ends early", func(t *testing.T) {
		p, _ := newTestPrompter("btcusdt", "buy")

		_, err := OrderRequest(p)
		assert.ErrorIs(t, err, io.EOF)
	})
}
