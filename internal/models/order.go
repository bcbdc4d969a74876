package models

import (
	"fmt"
	"time"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
	PaymentMobile PaymentMethod = "Mobile Payment"
)

var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentMobile}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, m := range PaymentMethods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// CartLine is one product and its quantity. Quantity is always at least 1.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() int {
	return l.Product.Price * l.Quantity
}

// Order is the immutable result of a checkout. Card details are never kept.
type Order struct {
	Number string `json:"order_number"`
	Customer
	PaymentMethod PaymentMethod `json:"payment_method"`
	Items         []CartLine    `json:"items"`
	Total         int           `json:"total"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Lines returns a copy of the order items so callers cannot mutate the order.
func (o Order) Lines() []CartLine {
	return append([]CartLine(nil), o.Items...)
}
