// Package pos wires the catalog, cart, checkout form and receipt together
// and owns the current order slot.
package pos

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Keoroanthony/go-pos/internal/cart"
	"github.com/Keoroanthony/go-pos/internal/catalog"
	"github.com/Keoroanthony/go-pos/internal/checkout"
	"github.com/Keoroanthony/go-pos/internal/logger"
	"github.com/Keoroanthony/go-pos/internal/models"
	"github.com/Keoroanthony/go-pos/internal/notifier"
	"github.com/Keoroanthony/go-pos/internal/printer"
	"github.com/Keoroanthony/go-pos/internal/receipt"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoCurrentOrder  = errors.New("no current order")
)

// CartView is the cart panel: lines and running total.
type CartView struct {
	Items []models.CartLine `json:"items"`
	Total int               `json:"total"`
}

// Shell serializes every operation with a mutex, so each action runs to
// completion before the next one starts.
type Shell struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	cart     *cart.Cart
	form     *checkout.Form
	printer  printer.Printer
	notifier notifier.Notifier
	log      *logger.Logger
	current  *models.Order
}

type Deps struct {
	Catalog  *catalog.Catalog
	Cart     *cart.Cart
	Form     *checkout.Form
	Printer  printer.Printer
	Notifier notifier.Notifier
	Logger   *logger.Logger
}

func New(d Deps) *Shell {
	return &Shell{
		catalog:  d.Catalog,
		cart:     d.Cart,
		form:     d.Form,
		printer:  d.Printer,
		notifier: d.Notifier,
		log:      d.Logger,
	}
}

func (s *Shell) Products() []models.Product {
	return s.catalog.Products()
}

func (s *Shell) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartView()
}

func (s *Shell) cartView() CartView {
	return CartView{Items: s.cart.Lines(), Total: s.cart.Total()}
}

func (s *Shell) AddToCart(ctx context.Context, productID int) (CartView, error) {
	p, ok := s.catalog.Find(productID)
	if !ok {
		return CartView{}, fmt.Errorf("%w: %d", ErrProductNotFound, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(ctx, p)
	return s.cartView(), nil
}

func (s *Shell) IncreaseQuantity(ctx context.Context, productID int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Increase(ctx, productID)
	return s.cartView()
}

func (s *Shell) DecreaseQuantity(ctx context.Context, productID int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Decrease(ctx, productID)
	return s.cartView()
}

func (s *Shell) RemoveFromCart(ctx context.Context, productID int) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(ctx, productID)
	return s.cartView()
}

func (s *Shell) Form() (checkout.Fields, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Fields(), s.form.CanSubmit(s.cart.Len())
}

// CanCheckout reports whether the cart has lines and the customer fields are
// filled in.
func (s *Shell) CanCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.CanSubmit(s.cart.Len())
}

func (s *Shell) UpdateForm(p checkout.Patch) (checkout.Fields, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.form.Apply(p)
	return s.form.Fields(), s.form.CanSubmit(s.cart.Len()), err
}

// Checkout submits the form. The new order replaces the current one and the
// customer is notified; notifier failures are only logged.
func (s *Shell) Checkout(ctx context.Context) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.form.Submit(ctx, s.cart)
	if err != nil {
		return models.Order{}, err
	}
	s.current = &order
	s.log.Info("order_created", order.Number, "checkout completed", map[string]any{
		"total":          order.Total,
		"items":          len(order.Items),
		"payment_method": string(order.PaymentMethod),
	})

	if err := s.notifier.NotifyPayment(ctx, order); err != nil {
		s.log.Warn("notify_failed", order.Number, "payment confirmation not delivered", err)
	}
	return order, nil
}

func (s *Shell) CurrentOrder() (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Order{}, false
	}
	order := *s.current
	order.Items = order.Lines()
	return order, true
}

func (s *Shell) Receipt() (string, error) {
	order, ok := s.CurrentOrder()
	if !ok {
		return "", ErrNoCurrentOrder
	}
	return receipt.Render(order)
}

// Print sends the current receipt to the printer.
func (s *Shell) Print(ctx context.Context) error {
	order, ok := s.CurrentOrder()
	if !ok {
		return ErrNoCurrentOrder
	}
	doc, err := receipt.Render(order)
	if err != nil {
		return err
	}
	if err := s.printer.Print(ctx, order.Number, doc); err != nil {
		return fmt.Errorf("print %s: %w", order.Number, err)
	}
	s.log.Info("receipt_printed", order.Number, "receipt sent to printer", nil)
	return nil
}

// NewOrder discards the current order and leaves the cart alone.
func (s *Shell) NewOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
