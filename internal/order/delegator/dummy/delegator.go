package dummy

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/archie1710/TRADING-BOT/internal/adapter"
	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/yanun0323/decimal"
)

const _firstOrderID = 1_000_000

// Delegator is an in-memory venue. Every order is accepted as NEW with a
// fresh id and nothing ever fills.
type Delegator struct {
	lastID atomic.Int64
	reject *adapter.APIError

	mu   sync.Mutex
	sent []adapter.OrderParams
}

type Option func(*Delegator)

// WithRejection makes every order fail with the given venue error.
func WithRejection(httpStatus, code int, msg string) Option {
	return func(d *Delegator) {
		d.reject = &adapter.APIError{HTTPStatus: httpStatus, Code: code, Message: msg}
	}
}

func NewDelegator(opts ...Option) *Delegator {
	d := &Delegator{}
	d.lastID.Store(_firstOrderID)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Delegator) CreateFuturesOrder(ctx context.Context, params adapter.OrderParams) (adapter.OrderAck, error) {
	if err := ctx.Err(); err != nil {
		return adapter.OrderAck{}, err
	}

	d.mu.Lock()
	d.sent = append(d.sent, params)
	d.mu.Unlock()

	if d.reject != nil {
		rejection := *d.reject
		return adapter.OrderAck{}, &rejection
	}

	ack := adapter.OrderAck{
		OrderID:     d.lastID.Add(1),
		Symbol:      params.Symbol,
		Side:        params.Side,
		Type:        params.Type,
		Status:      enum.OrderStatusNew,
		OrigQty:     params.Quantity,
		ExecutedQty: decimal.Zero,
		AvgPrice:    decimal.Zero,
		TimeInForce: params.TimeInForce,
		UpdateTime:  time.Now().UnixMilli(),
	}
	if params.Price.Valid {
		ack.Price = params.Price.Decimal
	}
	if params.StopPrice.Valid {
		ack.StopPrice = params.StopPrice.Decimal
	}

	return ack, nil
}

// Sent returns a copy of every payload received so far.
func (d *Delegator) Sent() []adapter.OrderParams {
	d.mu.Lock()
	defer d.mu.Unlock()

	sent := make([]adapter.OrderParams, len(d.sent))
	copy(sent, d.sent)
	return sent
}
