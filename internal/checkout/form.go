// Package checkout holds the checkout form: field normalization, card
// validation and conversion of a cart into an order.
package checkout

import (
	"context"
	"time"

	"github.com/Keoroanthony/go-pos/internal/models"
)

// Cart is the part of the cart store checkout needs.
type Cart interface {
	Lines() []models.CartLine
	Total() int
	Len() int
	Clear(ctx context.Context)
}

// Fields is a snapshot of what the form currently holds.
type Fields struct {
	models.Customer
	PaymentMethod models.PaymentMethod
	CardNumber    string
	Expiry        string
	CVV           string
}

// Patch carries field edits. Nil fields are left unchanged.
type Patch struct {
	CustomerName  *string `json:"customer_name"`
	Contact       *string `json:"contact"`
	PaymentMethod *string `json:"payment_method"`
	CardNumber    *string `json:"card_number"`
	Expiry        *string `json:"expiry"`
	CVV           *string `json:"cvv"`
}

type Form struct {
	fields  Fields
	numbers NumberGenerator
	now     func() time.Time
	expiry  ExpiryPolicy
}

type Option func(*Form)

func WithNumberGenerator(g NumberGenerator) Option {
	return func(f *Form) {
		f.numbers = g
	}
}

func WithClock(now func() time.Time) Option {
	return func(f *Form) {
		f.now = now
	}
}

func WithExpiryPolicy(p ExpiryPolicy) Option {
	return func(f *Form) {
		f.expiry = p
	}
}

func NewForm(opts ...Option) *Form {
	f := &Form{
		numbers: RandomNumbers{},
		now:     time.Now,
		expiry:  DefaultExpiryPolicy,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.Reset()
	return f
}

func (f *Form) Fields() Fields {
	return f.fields
}

// Apply normalizes and stores the edits in p. An unknown payment method is
// rejected and nothing in p is applied.
func (f *Form) Apply(p Patch) error {
	next := f.fields
	if p.PaymentMethod != nil {
		m, err := models.ParsePaymentMethod(*p.PaymentMethod)
		if err != nil {
			return &ValidationError{Field: "payment_method", Message: err.Error()}
		}
		next.PaymentMethod = m
	}
	if p.CustomerName != nil {
		next.Name = *p.CustomerName
	}
	if p.Contact != nil {
		next.Contact = *p.Contact
	}
	if p.CardNumber != nil {
		next.CardNumber = digitsOnly(*p.CardNumber, cardNumberLength)
	}
	if p.Expiry != nil {
		next.Expiry = NormalizeExpiry(*p.Expiry)
	}
	if p.CVV != nil {
		next.CVV = digitsOnly(*p.CVV, cvvLength)
	}
	f.fields = next
	return nil
}

// Reset restores the defaults: empty fields and Cash.
func (f *Form) Reset() {
	f.fields = Fields{PaymentMethod: models.PaymentCash}
}

// CanSubmit reports whether the checkout action is available.
func (f *Form) CanSubmit(cartLen int) bool {
	return cartLen > 0 && f.fields.Complete()
}

// Validate checks the card details when paying by card.
func (f *Form) Validate() error {
	if f.fields.PaymentMethod != models.PaymentCard {
		return nil
	}
	if err := validateCardNumber(f.fields.CardNumber); err != nil {
		return err
	}
	if err := f.expiry.Validate(f.fields.Expiry); err != nil {
		return err
	}
	return validateCVV(f.fields.CVV)
}

// Submit turns the cart into an order, then clears the cart and resets the
// form. On error neither the cart nor the form is touched.
func (f *Form) Submit(ctx context.Context, cart Cart) (models.Order, error) {
	if !f.CanSubmit(cart.Len()) {
		return models.Order{}, ErrCheckoutUnavailable
	}
	if err := f.Validate(); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		Number:        f.numbers.Next(),
		Customer:      f.fields.Customer,
		PaymentMethod: f.fields.PaymentMethod,
		Items:         cart.Lines(),
		Total:         cart.Total(),
		CreatedAt:     f.now(),
	}

	cart.Clear(ctx)
	f.Reset()
	return order, nil
}
