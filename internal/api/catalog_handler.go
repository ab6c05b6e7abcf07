package api

import (
	"net/http"

	"siddhartha-be/internal/product"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProducts(c *gin.Context) {
	opts := product.ListOptions{
		Category: product.Category(c.Query("category")),
	}
	switch c.Query("featured") {
	case "true":
		t := true
		opts.Featured = &t
	case "false":
		f := false
		opts.Featured = &f
	}

	products, err := h.Products.List(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *Handler) GetProduct(c *gin.Context) {
	id := idParam(c, "id")
	if id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": product.ErrProductNotFound.Error()})
		return
	}

	p, err := h.Products.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*p))
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponses(categories))
}
