package exception

import "errors"

var (
	ErrOrderInvalidRequest       = errors.New("order: invalid request")
	ErrOrderUnsupportedKind      = errors.New("order: unsupported kind")
	ErrOrderNilDelegator         = errors.New("order: nil delegator")
	ErrOrderNilLogger            = errors.New("order: nil logger")
	ErrOrderDecodeResponseBody   = errors.New("order: decode response body")
	ErrOrderEmptyResponseOrderID = errors.New("order: empty response order id")
)
