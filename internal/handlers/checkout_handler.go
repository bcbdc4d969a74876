package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/go-pos/internal/checkout"
	"github.com/Keoroanthony/go-pos/internal/models"
	"github.com/Keoroanthony/go-pos/internal/notifier"
)

// CheckoutForm is the form as shown to the cashier. The full card number and
// the cvv are never echoed back.
type CheckoutForm struct {
	CustomerName    string                 `json:"customer_name"`
	Contact         string                 `json:"contact"`
	PaymentMethod   models.PaymentMethod   `json:"payment_method"`
	PaymentMethods  []models.PaymentMethod `json:"payment_methods"`
	CardNumberLast4 string                 `json:"card_number_last4,omitempty"`
	CardDigits      int                    `json:"card_digits"`
	Expiry          string                 `json:"expiry,omitempty"`
	CVVEntered      bool                   `json:"cvv_entered"`
	CanCheckout     bool                   `json:"can_checkout"`
}

func newCheckoutForm(f checkout.Fields, canCheckout bool) CheckoutForm {
	form := CheckoutForm{
		CustomerName:   f.Name,
		Contact:        f.Contact,
		PaymentMethod:  f.PaymentMethod,
		PaymentMethods: models.PaymentMethods,
		CardDigits:     len(f.CardNumber),
		Expiry:         f.Expiry,
		CVVEntered:     f.CVV != "",
		CanCheckout:    canCheckout,
	}
	if n := len(f.CardNumber); n >= 4 {
		form.CardNumberLast4 = f.CardNumber[n-4:]
	}
	return form
}

func (h *Handler) GetCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, newCheckoutForm(h.shell.Form()))
}

func (h *Handler) UpdateCheckout(c *gin.Context) {
	var patch checkout.Patch

	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	fields, can, err := h.shell.UpdateForm(patch)
	if err != nil {
		validationFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, newCheckoutForm(fields, can))
}

func (h *Handler) Checkout(c *gin.Context) {
	order, err := h.shell.Checkout(c.Request.Context())

	if errors.Is(err, checkout.ErrCheckoutUnavailable) {
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty or customer details are missing"})
		return
	}
	if err != nil {
		h.log.Warn("checkout_rejected", requestID(c), "checkout validation failed", err)
		validationFailed(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "order created successfully",
		"confirmation": notifier.ConfirmationMessage(order),
		"order":        order,
	})
}

func validationFailed(c *gin.Context, err error) {
	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
