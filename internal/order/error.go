package order

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyCart            = errors.New("order must contain at least one item")
	ErrMissingAddress       = errors.New("shipping address is incomplete")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidQuantity      = errors.New("item quantity must be positive")
	ErrOutOfStock           = errors.New("product is out of stock")
	ErrUnauthorized         = errors.New("cannot access another customer's order")
	ErrInvalidStatus        = errors.New("invalid status transition")
)
