package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/service"
	"github.com/nikolayk812/shopcart/internal/store"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type UpdateQuantityRequest struct {
	Quantity json.Number `json:"quantity" binding:"required"`
}

// ShippingRequest rejects the obvious shape errors at binding time; the
// character rules for the city live in domain.ShippingInfo.
type ShippingRequest struct {
	City    string `json:"city" binding:"required,min=2,max=50"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required,len=5,numeric"`
}

func HandleGetCart(cart *store.Store, unit currency.Unit) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, newCartView(cart.Snapshot(), unit))
	}
}

// HandleInitializeCart answers 200 even when loading failed; the failure is
// in the error field of the view.
func HandleInitializeCart(cart *store.Store, unit currency.Unit) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.InitializeCart(c.Request.Context())
		c.JSON(http.StatusOK, newCartView(cart.Snapshot(), unit))
	}
}

func HandleAddItem(cart *store.Store, unit currency.Unit) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.AddItem(c.Request.Context())
		c.JSON(http.StatusOK, newCartView(cart.Snapshot(), unit))
	}
}

func HandleRemoveItem(cart *store.Store, unit currency.Unit) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productIDParam(c)
		if !ok {
			return
		}

		cart.RemoveItem(id)
		c.JSON(http.StatusOK, newCartView(cart.Snapshot(), unit))
	}
}

// HandleUpdateQuantity treats fractional quantities and integers too large
// for an int like any other invalid one: the cart is left as is and
// "applied" is false.
func HandleUpdateQuantity(cart *store.Store, unit currency.Unit, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productIDParam(c)
		if !ok {
			return
		}

		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid request",
				"details": err.Error(),
			})
			return
		}

		applied := false
		quantity, err := service.ParseQuantity(req.Quantity.String())
		switch {
		case errors.Is(err, service.ErrNonIntegerQuantity), errors.Is(err, service.ErrQuantityOutOfRange):
			logger.Debug("Quantity ignored", zap.String("quantity", req.Quantity.String()), zap.Error(err))
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid quantity",
				"details": err.Error(),
			})
			return
		default:
			applied = cart.UpdateQuantity(id, quantity)
		}

		view := newCartView(cart.Snapshot(), unit)
		view.Applied = &applied
		c.JSON(http.StatusOK, view)
	}
}

func HandleClearCart(cart *store.Store, unit currency.Unit) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.ClearCart()
		c.JSON(http.StatusOK, newCartView(cart.Snapshot(), unit))
	}
}

func HandleSetShipping(cart *store.Store, unit currency.Unit) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ShippingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":   "validation failed",
					"details": validationErrs.Error(),
				})
				return
			}

			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid request",
				"details": err.Error(),
			})
			return
		}

		err := cart.SetShippingInfo(domain.ShippingInfo{
			City:    req.City,
			State:   req.State,
			ZipCode: req.ZipCode,
		})
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, newCartView(cart.Snapshot(), unit))
	}
}

func productIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return id, true
}
