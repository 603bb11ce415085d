package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/archie1710/TRADING-BOT/internal/adapter"
	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/archie1710/TRADING-BOT/pkg/exception"
	"github.com/google/uuid"
	"github.com/yanun0323/decimal"
	"go.uber.org/zap"
)

// Delegator is the exchange connection. It signs and transports one order
// and returns *adapter.APIError when the venue refuses it.
type Delegator interface {
	CreateFuturesOrder(context.Context, adapter.OrderParams) (adapter.OrderAck, error)
}

// Result holds exactly one of Order or Failure.
type Result struct {
	Order   *adapter.OrderResult
	Failure *adapter.OrderFailure
}

func (r Result) OK() bool {
	return r.Order != nil
}

// Client places futures orders through a single delegator. It holds no
// mutable state, so sequential callers may share it.
type Client struct {
	delegator Delegator
	log       *zap.Logger
}

func NewClient(delegator Delegator, log *zap.Logger) (*Client, error) {
	if delegator == nil {
		return nil, exception.ErrOrderNilDelegator
	}

	if log == nil {
		return nil, exception.ErrOrderNilLogger
	}

	return &Client{
		delegator: delegator,
		log:       log,
	}, nil
}

func (c *Client) PlaceMarketOrder(ctx context.Context, symbol string, side enum.OrderSide, quantity decimal.Decimal) (Result, error) {
	return c.submit(ctx, adapter.NewMarketOrderRequest(symbol, side, quantity))
}

func (c *Client) PlaceLimitOrder(ctx context.Context, symbol string, side enum.OrderSide, quantity, price decimal.Decimal) (Result, error) {
	return c.submit(ctx, adapter.NewLimitOrderRequest(symbol, side, quantity, price))
}

// PlaceStopLimitOrder places a STOP order: dormant until triggerPrice is
// crossed, then a GTC limit order at limitPrice.
func (c *Client) PlaceStopLimitOrder(ctx context.Context, symbol string, side enum.OrderSide, quantity, limitPrice, triggerPrice decimal.Decimal) (Result, error) {
	return c.submit(ctx, adapter.NewStopLimitOrderRequest(symbol, side, quantity, limitPrice, triggerPrice))
}

// Place dispatches req to the operation for its kind.
func (c *Client) Place(ctx context.Context, req adapter.OrderRequest) (Result, error) {
	switch req.Kind {
	case enum.OrderKindMarket:
		return c.PlaceMarketOrder(ctx, req.Symbol, req.Side, req.Quantity)
	case enum.OrderKindLimit:
		return c.PlaceLimitOrder(ctx, req.Symbol, req.Side, req.Quantity, req.Price.Decimal)
	case enum.OrderKindStopLimit:
		return c.PlaceStopLimitOrder(ctx, req.Symbol, req.Side, req.Quantity, req.Price.Decimal, req.StopPrice.Decimal)
	default:
		return Result{}, fmt.Errorf("%w: %d", exception.ErrOrderUnsupportedKind, req.Kind)
	}
}

// submit sends req once. Venue rejections come back as Result.Failure,
// anything else is returned as error.
func (c *Client) submit(ctx context.Context, req adapter.OrderRequest) (Result, error) {
	if err := req.Validate(); err != nil {
		c.log.Warn("reject request", zap.Stringer("kind", req.Kind), zap.Error(err))
		return Result{}, err
	}

	params, err := req.Params()
	if err != nil {
		return Result{}, err
	}

	log := c.log.With(zap.String("req_id", uuid.NewString()))
	log.Info("sending request", zap.Object("params", paramsField(params)))

	ack, err := c.delegator.CreateFuturesOrder(ctx, params)
	if err != nil {
		var apiErr *adapter.APIError
		if errors.As(err, &apiErr) {
			failure := apiErr.Failure()
			log.Error("order failed",
				zap.Stringer("reason", failure),
				zap.Int("code", failure.Code),
				zap.String("message", failure.Message),
				zap.Int("http_status", failure.HTTPStatus),
			)
			return Result{Failure: &failure}, nil
		}

		log.Error("order request error", zap.Error(err))
		return Result{}, err
	}

	log.Info("api response", zap.Object("ack", ackField(ack)))

	res := ack.Result()
	return Result{Order: &res}, nil
}
