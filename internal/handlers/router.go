package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-pos/internal/logger"
	"github.com/Keoroanthony/go-pos/internal/pos"
)

const requestIDHeader = "X-Request-ID"

type Handler struct {
	shell *pos.Shell
	log   *logger.Logger
}

func New(shell *pos.Shell, log *logger.Logger) *Handler {
	return &Handler{shell: shell, log: log}
}

// Router registers every till endpoint.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(h.log))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		api.GET("/products", h.ListProducts)

		api.GET("/cart", h.GetCart)
		api.POST("/cart/items", h.AddCartItem)
		api.POST("/cart/items/:id/increase", h.IncreaseCartItem)
		api.POST("/cart/items/:id/decrease", h.DecreaseCartItem)
		api.DELETE("/cart/items/:id", h.RemoveCartItem)

		api.GET("/checkout", h.GetCheckout)
		api.PATCH("/checkout", h.UpdateCheckout)
		api.POST("/checkout", h.Checkout)

		api.GET("/order", h.GetOrder)
		api.GET("/order/receipt", h.GetReceipt)
		api.POST("/order/print", h.PrintReceipt)
		api.DELETE("/order", h.NewOrder)
	}

	return r
}

// RequestLogger tags each request with an id and logs it once it completes.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()

		log.Info("http_request", requestID, "request handled", map[string]any{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}

func requestID(c *gin.Context) string {
	return c.GetString("request_id")
}
