package api

import (
	"net/http"

	"siddhartha-be/internal/middleware"
	"siddhartha-be/internal/order"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateOrder(c *gin.Context) {
	var input order.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order payload"})
		return
	}

	o, err := h.Orders.CreateOrder(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(o))
}

func (h *Handler) ListMyOrders(c *gin.Context) {
	orders, err := h.Orders.ListUserOrders(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *Handler) GetOrder(c *gin.Context) {
	id := idParam(c, "id")
	if id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": order.ErrOrderNotFound.Error()})
		return
	}

	o, err := h.Orders.GetOrder(c.Request.Context(), middleware.UserID(c), id, c.GetBool(middleware.CtxIsAdminKey))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(o))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id := idParam(c, "id")
	if id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": order.ErrOrderNotFound.Error()})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}

	if err := h.Orders.UpdateStatus(c.Request.Context(), id, order.Status(req.Status)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}
