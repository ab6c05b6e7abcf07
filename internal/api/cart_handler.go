package api

import (
	"net/http"

	"siddhartha-be/internal/cart"
	"siddhartha-be/internal/middleware"
	"siddhartha-be/internal/wishlist"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID uint   `json:"product" binding:"required"`
	Quantity  int    `json:"qty" binding:"required"`
	Size      string `json:"size"`
}

func (h *Handler) GetCart(c *gin.Context) {
	items, err := h.Cart.GetCart(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]cartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toCartItemResponse(it))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "product and qty are required"})
		return
	}

	item, err := h.Cart.AddToCart(c.Request.Context(), cart.AddToCartParams{
		UserID:    middleware.UserID(c),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCartItemResponse(*item))
}

type wishlistRequest struct {
	ProductID uint `json:"product" binding:"required"`
}

func (h *Handler) GetWishlist(c *gin.Context) {
	products, err := h.Wishlist.GetWishlist(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *Handler) AddToWishlist(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "product is required"})
		return
	}

	products, err := h.Wishlist.Add(c.Request.Context(), middleware.UserID(c), req.ProductID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponses(products))
}

func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	id := idParam(c, "id")
	if id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": wishlist.ErrNotInWishlist.Error()})
		return
	}

	products, err := h.Wishlist.Remove(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}
