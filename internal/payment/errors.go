package payment

import "errors"

var (
	// ErrDecode means the callback payload could not be decoded into the
	// required shape. Nothing was mutated.
	ErrDecode = errors.New("malformed gateway callback payload")

	// ErrPaymentIncomplete means the gateway reported a non-success status.
	ErrPaymentIncomplete = errors.New("payment was not completed")

	// ErrSignatureInvalid means the callback's signature did not verify
	// against the server secret. Security-relevant; never retried.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrAmountMismatch means the callback amount disagrees with the order
	// total beyond tolerance. Security-relevant; never retried.
	ErrAmountMismatch = errors.New("amount mismatch")

	// ErrTotalMismatch means the caller-supplied total did not round to the
	// order's authoritative total during config generation.
	ErrTotalMismatch = errors.New("requested amount does not match order total")

	// ErrOrderAlreadyPaid rejects config generation for settled orders.
	ErrOrderAlreadyPaid = errors.New("order is already paid")
)
