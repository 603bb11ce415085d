package order

import (
	"github.com/archie1710/TRADING-BOT/internal/adapter"
	"go.uber.org/zap/zapcore"
)

type paramsField adapter.OrderParams

func (p paramsField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("symbol", p.Symbol)
	enc.AddString("side", p.Side.String())
	enc.AddString("type", p.Type.String())
	enc.AddString("quantity", p.Quantity.String())
	if p.TimeInForce.IsAvailable() {
		enc.AddString("timeInForce", p.TimeInForce.String())
	}
	if p.Price.Valid {
		enc.AddString("price", p.Price.Decimal.String())
	}
	if p.StopPrice.Valid {
		enc.AddString("stopPrice", p.StopPrice.Decimal.String())
	}
	return nil
}

type ackField adapter.OrderAck

func (a ackField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("orderId", a.OrderID)
	if len(a.ClientOrderID) != 0 {
		enc.AddString("clientOrderId", a.ClientOrderID)
	}
	enc.AddString("symbol", a.Symbol)
	enc.AddString("side", a.Side.String())
	enc.AddString("type", a.Type.String())
	enc.AddString("status", a.Status.String())
	enc.AddString("origQty", a.OrigQty.String())
	enc.AddString("executedQty", a.ExecutedQty.String())
	enc.AddString("price", a.Price.String())
	enc.AddString("stopPrice", a.StopPrice.String())
	enc.AddString("avgPrice", a.AvgPrice.String())
	if a.TimeInForce.IsAvailable() {
		enc.AddString("timeInForce", a.TimeInForce.String())
	}
	enc.AddInt64("updateTime", a.UpdateTime)
	return nil
}
