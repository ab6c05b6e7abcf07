package api

import (
	"net/http"

	"siddhartha-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type paymentConfigRequest struct {
	OrderID uint    `json:"orderId" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
}

// EsewaConfig issues a signed initiation payload for the caller's own unpaid
// order. The signed amount is always the stored order total.
func (h *Handler) EsewaConfig(c *gin.Context) {
	var req paymentConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "orderId and amount are required"})
		return
	}

	cfg, err := h.Payments.GenerateConfig(c.Request.Context(), middleware.UserID(c), req.OrderID, req.Amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

type verifyRequest struct {
	Data string `json:"data" binding:"required"`
}

// EsewaVerify consumes the gateway's encoded callback. Unauthenticated: the
// signature, not the session, is what authorizes the transition.
func (h *Handler) EsewaVerify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "data is required"})
		return
	}

	res, err := h.Payments.Verify(c.Request.Context(), req.Data)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "payment verified",
		"alreadyPaid": res.AlreadyPaid,
		"order":       toOrderResponse(res.Order),
	})
}
