package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-pos/internal/pos"
)

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.shell.Cart())
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.shell.AddToCart(c.Request.Context(), req.ProductID)
	if errors.Is(err, pos.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Debug("cart_add", requestID(c), "product added to cart", map[string]any{"product_id": req.ProductID})
	c.JSON(http.StatusOK, view)
}

func (h *Handler) IncreaseCartItem(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.shell.IncreaseQuantity(c.Request.Context(), id))
}

func (h *Handler) DecreaseCartItem(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.shell.DecreaseQuantity(c.Request.Context(), id))
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.shell.RemoveFromCart(c.Request.Context(), id))
}

func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return 0, false
	}
	return id, true
}
