package adapter

import (
	"strconv"

	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/yanun0323/decimal"
)

// OrderAck is what the venue returns for an accepted order.
type OrderAck struct {
	OrderID       int64
	ClientOrderID string
	Symbol        string
	Side          enum.OrderSide
	Type          enum.OrderType
	Status        enum.OrderStatus
	OrigQty       decimal.Decimal
	ExecutedQty   decimal.Decimal
	Price         decimal.Decimal
	StopPrice     decimal.Decimal
	AvgPrice      decimal.Decimal
	TimeInForce   enum.OrderTimeInForce
	UpdateTime    int64
}

// Result normalizes the acknowledgment. The venue reports a zero average
// price until something fills, which becomes an absent AvgPrice.
func (ack OrderAck) Result() OrderResult {
	res := OrderResult{
		OrderID:  ack.OrderID,
		Status:   ack.Status,
		Type:     ack.Type,
		Symbol:   ack.Symbol,
		Side:     ack.Side,
		Quantity: ack.OrigQty,
	}

	if !ack.AvgPrice.IsZero() {
		res.AvgPrice = NewNullDecimal(ack.AvgPrice)
	}

	return res
}

// OrderResult is a successfully submitted order.
type OrderResult struct {
	OrderID  int64
	Status   enum.OrderStatus
	Type     enum.OrderType
	Symbol   string
	Side     enum.OrderSide
	Quantity decimal.Decimal
	AvgPrice NullDecimal
}

// OrderFailure is a request the venue refused. It never carries partial results.
type OrderFailure struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (f OrderFailure) String() string {
	return strconv.Itoa(f.Code) + " - " + f.Message
}

// APIError is returned by delegators when the venue answers with an error body.
type APIError struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	buf := make([]byte, 0, 64+len(e.Message))
	buf = append(buf, "api error: status="...)
	buf = strconv.AppendInt(buf, int64(e.HTTPStatus), 10)
	buf = append(buf, ", code="...)
	buf = strconv.AppendInt(buf, int64(e.Code), 10)
	buf = append(buf, ", msg="...)
	buf = append(buf, e.Message...)
	return string(buf)
}

func (e *APIError) Failure() OrderFailure {
	return OrderFailure{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
	}
}
