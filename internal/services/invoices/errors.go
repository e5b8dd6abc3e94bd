package invoices

import "errors"

// Failure kinds surfaced to the transport layer, which decides the final
// response shape. Lower-level store, filesystem and transport errors are
// re-classified into these; their detail stays in the server log.
var (
	ErrInvalidFilter        = errors.New("invalid status filter operator")
	ErrNotFound             = errors.New("invoice not found")
	ErrUnsupportedProcessor = errors.New("unsupported payment processor")
	ErrPaymentFailed        = errors.New("payment failed")
	ErrReceiptUnavailable   = errors.New("receipt unavailable")
)
