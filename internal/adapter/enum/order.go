package enum

import "strings"

// OrderSide buy, sell
type OrderSide uint8

const (
	_order_side_beg OrderSide = iota
	OrderSideBuy
	OrderSideSell
	_order_side_end
)

func (s OrderSide) IsAvailable() bool {
	return s > _order_side_beg && s < _order_side_end
}

func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "BUY"
	case OrderSideSell:
		return "SELL"
	default:
		return ""
	}
}

// ParseOrderSide matches s case-insensitively against the wire names.
func ParseOrderSide(s string) (OrderSide, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return OrderSideBuy, true
	case "SELL":
		return OrderSideSell, true
	default:
		return 0, false
	}
}

// OrderKind market, limit, stop limit
//
// OrderKind is what the operator asks for. The exchange type sent on the wire
// is derived from it, see OrderKind.WireType.
type OrderKind uint8

const (
	_order_kind_beg OrderKind = iota
	OrderKindMarket
	OrderKindLimit
	OrderKindStopLimit
	_order_kind_end
)

func (k OrderKind) IsAvailable() bool {
	return k > _order_kind_beg && k < _order_kind_end
}

func (k OrderKind) String() string {
	switch k {
	case OrderKindMarket:
		return "MARKET"
	case OrderKindLimit:
		return "LIMIT"
	case OrderKindStopLimit:
		return "STOP_LIMIT"
	default:
		return ""
	}
}

// WireType maps the kind onto the futures order type. A stop limit order is
// the trigger-activated STOP type, never the spot STOP_LOSS_LIMIT type.
func (k OrderKind) WireType() OrderType {
	switch k {
	case OrderKindMarket:
		return OrderTypeMarket
	case OrderKindLimit:
		return OrderTypeLimit
	case OrderKindStopLimit:
		return OrderTypeStop
	default:
		return _order_type_beg
	}
}

func ParseOrderKind(s string) (OrderKind, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MARKET":
		return OrderKindMarket, true
	case "LIMIT":
		return OrderKindLimit, true
	case "STOP_LIMIT":
		return OrderKindStopLimit, true
	default:
		return 0, false
	}
}

// OrderKindNames lists the accepted operator inputs.
func OrderKindNames() []string {
	names := make([]string, 0, int(_order_kind_end)-1)
	for k := _order_kind_beg + 1; k < _order_kind_end; k++ {
		names = append(names, k.String())
	}
	return names
}

// OrderSideNames lists the accepted operator inputs.
func OrderSideNames() []string {
	names := make([]string, 0, int(_order_side_end)-1)
	for s := _order_side_beg + 1; s < _order_side_end; s++ {
		names = append(names, s.String())
	}
	return names
}

// OrderType futures wire types
type OrderType uint8

const (
	_order_type_beg OrderType = iota
	OrderTypeMarket
	OrderTypeLimit
	OrderTypeStop
	OrderTypeStopMarket
	OrderTypeTakeProfit
	OrderTypeTakeProfitMarket
	OrderTypeTrailingStopMarket
	_order_type_end
)

var orderTypeNames = [...]string{
	OrderTypeMarket:             "MARKET",
	OrderTypeLimit:              "LIMIT",
	OrderTypeStop:               "STOP",
	OrderTypeStopMarket:         "STOP_MARKET",
	OrderTypeTakeProfit:         "TAKE_PROFIT",
	OrderTypeTakeProfitMarket:   "TAKE_PROFIT_MARKET",
	OrderTypeTrailingStopMarket: "TRAILING_STOP_MARKET",
}

func (t OrderType) IsAvailable() bool {
	return t > _order_type_beg && t < _order_type_end
}

func (t OrderType) String() string {
	if !t.IsAvailable() {
		return ""
	}
	return orderTypeNames[t]
}

func ParseOrderType(s string) (OrderType, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t := _order_type_beg + 1; t < _order_type_end; t++ {
		if orderTypeNames[t] == s {
			return t, true
		}
	}
	return 0, false
}

// OrderStatus new, partially filled, filled, canceled, rejected, expired
type OrderStatus uint8

const (
	_order_status_beg OrderStatus = iota
	OrderStatusNew
	OrderStatusPartiallyFilled
	OrderStatusFilled
	OrderStatusCanceled
	OrderStatusRejected
	OrderStatusExpired
	OrderStatusExpiredInMatch
	_order_status_end
)

var orderStatusNames = [...]string{
	OrderStatusNew:             "NEW",
	OrderStatusPartiallyFilled: "PARTIALLY_FILLED",
	OrderStatusFilled:          "FILLED",
	OrderStatusCanceled:        "CANCELED",
	OrderStatusRejected:        "REJECTED",
	OrderStatusExpired:         "EXPIRED",
	OrderStatusExpiredInMatch:  "EXPIRED_IN_MATCH",
}

func (s OrderStatus) IsAvailable() bool {
	return s > _order_status_beg && s < _order_status_end
}

func (s OrderStatus) String() string {
	if !s.IsAvailable() {
		return ""
	}
	return orderStatusNames[s]
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for st := _order_status_beg + 1; st < _order_status_end; st++ {
		if orderStatusNames[st] == s {
			return st, true
		}
	}
	return 0, false
}

// OrderTimeInForce GTC, IOC, FOK, GTX
type OrderTimeInForce uint8

const (
	_order_time_in_force_beg OrderTimeInForce = iota
	OrderTimeInForceGTC
	OrderTimeInForceIOC
	OrderTimeInForceFOK
	OrderTimeInForceGTX
	_order_time_in_force_end
)

func (s OrderTimeInForce) IsAvailable() bool {
	return s > _order_time_in_force_beg && s < _order_time_in_force_end
}

func (s OrderTimeInForce) String() string {
	switch s {
	case OrderTimeInForceGTC:
		return "GTC"
	case OrderTimeInForceIOC:
		return "IOC"
	case OrderTimeInForceFOK:
		return "FOK"
	case OrderTimeInForceGTX:
		return "GTX"
	default:
		return ""
	}
}

func ParseOrderTimeInForce(s string) (OrderTimeInForce, bool) {
	for tif := _order_time_in_force_beg + 1; tif < _order_time_in_force_end; tif++ {
		if tif.String() == strings.ToUpper(strings.TrimSpace(s)) {
			return tif, true
		}
	}
	return 0, false
}
