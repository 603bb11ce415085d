package adapter

import (
	"errors"
	"testing"

	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/archie1710/TRADING-BOT/pkg/exception"
	"github.com/yanun0323/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRequestParams(t *testing.T) {
	qty := decimal.Require("0.01")
	price := decimal.Require("60000")
	trigger := decimal.Require("59000")

	t.Run("market", func(t *testing.T) {
		params, err := NewMarketOrderRequest(" btcusdt ", enum.OrderSideBuy, qty).Params()
		require.NoError(t, err)
		assert.Equal(t, "BTCUSDT", params.Symbol)
		assert.Equal(t, enum.OrderTypeMarket, params.Type)
		assert.False(t, params.Price.Valid)
		assert.False(t, params.StopPrice.Valid)
		assert.False(t, params.TimeInForce.IsAvailable())
	})

	t.Run("limit", func(t *testing.T) {
		params, err := NewLimitOrderRequest("ethusdt", enum.OrderSideSell, qty, price).Params()
		require.NoError(t, err)
		assert.Equal(t, enum.OrderTypeLimit, params.Type)
		assert.Equal(t, enum.OrderTimeInForceGTC, params.TimeInForce)
		require.True(t, params.Price.Valid)
		assert.True(t, price.Equal(params.Price.Decimal))
		assert.False(t, params.StopPrice.Valid)
	})

	t.Run("stop limit", func(t *testing.T) {
		params, err := NewStopLimitOrderRequest("btcusdt", enum.OrderSideSell, qty, price, trigger).Params()
		require.NoError(t, err)
		assert.Equal(t, enum.OrderTypeStop, params.Type)
		assert.Equal(t, enum.OrderTimeInForceGTC, params.TimeInForce)
		assert.True(t, price.Equal(params.Price.Decimal))
		assert.True(t, trigger.Equal(params.StopPrice.Decimal))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := OrderRequest{Symbol: "BTCUSDT"}.Params()
		assert.ErrorIs(t, err, exception.ErrOrderUnsupportedKind)
	})
}

func TestOrderRequestValidate(t *testing.T) {
	one := decimal.NewFromInt(1)
	zero := decimal.Zero
	negative := decimal.NewFromInt(-1)

	testCases := []struct {
		desc  string
		req   OrderRequest
		valid bool
	}{
		{"market ok", NewMarketOrderRequest("BTCUSDT", enum.OrderSideBuy, one), true},
		{"empty symbol", NewMarketOrderRequest("  ", enum.OrderSideBuy, one), false},
		{"unknown side", NewMarketOrderRequest("BTCUSDT", 0, one), false},
		{"zero quantity", NewMarketOrderRequest("BTCUSDT", enum.OrderSideBuy, zero), false},
		{"negative quantity", NewMarketOrderRequest("BTCUSDT", enum.OrderSideSell, negative), false},
		{"limit ok", NewLimitOrderRequest("BTCUSDT", enum.OrderSideBuy, one, one), true},
		{"limit zero price", NewLimitOrderRequest("BTCUSDT", enum.OrderSideBuy, one, zero), false},
		{"limit missing price", OrderRequest{Kind: enum.OrderKindLimit, Symbol: "BTCUSDT", Side: enum.OrderSideBuy, Quantity: one}, false},
		{"stop limit ok", NewStopLimitOrderRequest("BTCUSDT", enum.OrderSideSell, one, one, one), true},
		{"stop limit negative trigger", NewStopLimitOrderRequest("BTCUSDT", enum.OrderSideSell, one, one, negative), false},
		{"unknown kind", OrderRequest{Symbol: "BTCUSDT", Side: enum.OrderSideBuy, Quantity: one}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, exception.ErrOrderInvalidRequest), "got %v", err)
		})
	}
}

func TestOrderAckResult(t *testing.T) {
	ack := OrderAck{
		OrderID:  42,
		Symbol:   "BTCUSDT",
		Side:     enum.OrderSideBuy,
		Type:     enum.OrderTypeLimit,
		Status:   enum.OrderStatusNew,
		OrigQty:  decimal.Require("0.010"),
		AvgPrice: decimal.Require("0.00000"),
	}

	res := ack.Result()
	assert.Equal(t, int64(42), res.OrderID)
	assert.Equal(t, enum.OrderStatusNew, res.Status)
	assert.False(t, res.AvgPrice.Valid)

	ack.Status = enum.OrderStatusFilled
	ack.AvgPrice = decimal.Require("60123.5")
	res = ack.Result()
	require.True(t, res.AvgPrice.Valid)
	assert.Equal(t, "60123.5", res.AvgPrice.Decimal.String())
}

func TestAPIError(t *testing.T) {
	err := &APIError{HTTPStatus: 400, Code: -2010, Message: "Insufficient margin"}
	assert.Equal(t, "api error: status=400, code=-2010, msg=Insufficient margin", err.Error())

	failure := err.Failure()
	assert.Equal(t, -2010, failure.Code)
	assert.Equal(t, "-2010 - Insufficient margin", failure.String())
}

func TestToken(t *testing.T) {
	token := NewToken(" abcdefgh ", "secret")
	assert.False(t, token.IsEmpty())
	assert.Equal(t, "abcd****", token.String())
	assert.True(t, NewToken("key", "").IsEmpty())
}

func TestNullDecimal(t *testing.T) {
	var absent NullDecimal
	assert.False(t, absent.Valid)
	assert.Equal(t, "", absent.String())

	price := NewNullDecimal(decimal.Require("58_000.50"))
	assert.True(t, price.Valid)
	assert.Equal(t, "58000.5", price.String())
}
