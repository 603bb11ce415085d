package binance

import (
	"github.com/archie1710/TRADING-BOT/internal/adapter"
	"github.com/archie1710/TRADING-BOT/internal/adapter/enum"
	"github.com/yanun0323/decimal"
)

type ErrorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

type OrderResponse struct {
	OrderID       int64  `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	PositionSide  string `json:"positionSide"`
	Type          string `json:"type"`
	OrigType      string `json:"origType"`
	Status        string `json:"status"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	CumQuote      string `json:"cumQuote"`
	Price         string `json:"price"`
	StopPrice     string `json:"stopPrice"`
	AvgPrice      string `json:"avgPrice"`
	TimeInForce   string `json:"timeInForce"`
	ReduceOnly    bool   `json:"reduceOnly"`
	ClosePosition bool   `json:"closePosition"`
	WorkingType   string `json:"workingType"`
	UpdateTime    int64  `json:"updateTime"`
}

// Ack converts the raw response. Unknown enum strings become the zero value
// and unparsable numbers become zero.
func (r OrderResponse) Ack() adapter.OrderAck {
	side, _ := enum.ParseOrderSide(r.Side)
	typ, _ := enum.ParseOrderType(r.Type)
	status, _ := enum.ParseOrderStatus(r.Status)
	tif, _ := enum.ParseOrderTimeInForce(r.TimeInForce)

	return adapter.OrderAck{
		OrderID:       r.OrderID,
		ClientOrderID: r.ClientOrderID,
		Symbol:        r.Symbol,
		Side:          side,
		Type:          typ,
		Status:        status,
		OrigQty:       parseDecimal(r.OrigQty),
		ExecutedQty:   parseDecimal(r.ExecutedQty),
		Price:         parseDecimal(r.Price),
		StopPrice:     parseDecimal(r.StopPrice),
		AvgPrice:      parseDecimal(r.AvgPrice),
		TimeInForce:   tif,
		UpdateTime:    r.UpdateTime,
	}
}

func parseDecimal(s string) decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}

	d, err := decimal.New(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
