package payment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const refSeparator = "-"

var ErrMalformedRef = errors.New("malformed transaction reference")

// TransactionRef is the composite key sent to the gateway as
// transaction_uuid. The nonce makes every payment attempt unique while the
// prefix keeps each attempt traceable back to its order.
type TransactionRef struct {
	OrderID uint
	Nonce   string
}

// NewTransactionRef mints a fresh attempt reference for an order.
func NewTransactionRef(orderID uint) TransactionRef {
	return TransactionRef{
		OrderID: orderID,
		Nonce:   strconv.FormatInt(time.Now().UnixNano(), 10),
	}
}

func (r TransactionRef) String() string {
	return fmt.Sprintf("%d%s%s", r.OrderID, refSeparator, r.Nonce)
}

// ParseTransactionRef splits at the first separator and validates that the
// order id part is a plain positive integer.
func ParseTransactionRef(s string) (TransactionRef, error) {
	idPart, nonce, found := strings.Cut(s, refSeparator)
	if !found || idPart == "" || nonce == "" {
		return TransactionRef{}, ErrMalformedRef
	}

	id, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil || id == 0 {
		return TransactionRef{}, ErrMalformedRef
	}

	return TransactionRef{OrderID: uint(id), Nonce: nonce}, nil
}
