package api

import (
	"errors"
	"net/http"
	"strconv"

	"siddhartha-be/internal/cart"
	"siddhartha-be/internal/category"
	"siddhartha-be/internal/logger"
	"siddhartha-be/internal/order"
	"siddhartha-be/internal/payment"
	"siddhartha-be/internal/product"
	"siddhartha-be/internal/user"
	"siddhartha-be/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles the service layer behind the HTTP surface.
type Handler struct {
	Users      user.Service
	Products   product.Service
	Categories category.Service
	Cart       cart.Service
	Wishlist   wishlist.Service
	Orders     order.Service
	Payments   payment.Service
}

func NewHandler(
	users user.Service,
	products product.Service,
	categories category.Service,
	carts cart.Service,
	wishlists wishlist.Service,
	orders order.Service,
	payments payment.Service,
) *Handler {
	return &Handler{
		Users:      users,
		Products:   products,
		Categories: categories,
		Cart:       carts,
		Wishlist:   wishlists,
		Orders:     orders,
		Payments:   payments,
	}
}

// fail translates service errors into HTTP responses. Unknown errors are
// logged and masked as 500s.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, wishlist.ErrAlreadyInWishlist):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, wishlist.ErrNotInWishlist),
		errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, order.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrMissingAddress),
		errors.Is(err, order.ErrInvalidPaymentMethod),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrOutOfStock),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInsufficientStock),
		errors.Is(err, payment.ErrDecode),
		errors.Is(err, payment.ErrPaymentIncomplete),
		errors.Is(err, payment.ErrSignatureInvalid),
		errors.Is(err, payment.ErrAmountMismatch),
		errors.Is(err, payment.ErrTotalMismatch),
		errors.Is(err, payment.ErrOrderAlreadyPaid):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled request error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

// idParam parses a numeric path parameter; 0 means absent or invalid.
func idParam(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
