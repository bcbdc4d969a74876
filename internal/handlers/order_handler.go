package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-pos/internal/pos"
)

func (h *Handler) GetOrder(c *gin.Context) {
	order, ok := h.shell.CurrentOrder()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": pos.ErrNoCurrentOrder.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetReceipt(c *gin.Context) {
	doc, err := h.shell.Receipt()
	if errors.Is(err, pos.ErrNoCurrentOrder) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, doc)
}

func (h *Handler) PrintReceipt(c *gin.Context) {
	err := h.shell.Print(c.Request.Context())
	if errors.Is(err, pos.ErrNoCurrentOrder) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.log.Error("print_failed", requestID(c), "could not print receipt", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "receipt sent to printer"})
}

// NewOrder clears the finished order so the till can start over.
func (h *Handler) NewOrder(c *gin.Context) {
	h.shell.NewOrder()
	c.Status(http.StatusNoContent)
}
