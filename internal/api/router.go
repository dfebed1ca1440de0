package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/shopcart/internal/store"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// NewRouter exposes the cart session as JSON views; every action answers
// with the resulting cart.
func NewRouter(production bool, cart *store.Store, unit currency.Unit, logger *zap.Logger) *gin.Engine {
	if production {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cartRoutes := router.Group("/cart")
	{
		cartRoutes.GET("", HandleGetCart(cart, unit))
		cartRoutes.POST("/init", HandleInitializeCart(cart, unit))
		cartRoutes.POST("/items", HandleAddItem(cart, unit))
		cartRoutes.DELETE("/items/:id", HandleRemoveItem(cart, unit))
		cartRoutes.PATCH("/items/:id", HandleUpdateQuantity(cart, unit, logger))
		cartRoutes.POST("/clear", HandleClearCart(cart, unit))
		cartRoutes.POST("/shipping", HandleSetShipping(cart, unit))
	}

	return router
}

// customRecovery logs panics and answers 500
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
