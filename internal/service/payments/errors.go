package payments

import "errors"

var (
	ErrInvalidInput        = errors.New("payments: invalid input")
	ErrReservationNotFound = errors.New("payments: reservation not found")
	ErrAccessDenied        = errors.New("payments: access denied")
	ErrInvalidSignature    = errors.New("payments: invalid notification signature")
	ErrUnknownOrder        = errors.New("payments: unknown order id")
	ErrGatewayError        = errors.New("payments: payment gateway error")
	ErrInternal            = errors.New("payments: internal error")
)
