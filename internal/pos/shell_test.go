package pos

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keoroanthony/go-pos/internal/cart"
	"github.com/Keoroanthony/go-pos/internal/catalog"
	"github.com/Keoroanthony/go-pos/internal/checkout"
	"github.com/Keoroanthony/go-pos/internal/db"
	"github.com/Keoroanthony/go-pos/internal/logger"
	"github.com/Keoroanthony/go-pos/internal/models"
	"github.com/Keoroanthony/go-pos/internal/printer"
)

type stubNumbers struct{}

func (stubNumbers) Next() string { return "ORD-777777" }

type recordingNotifier struct {
	orders []models.Order
	err    error
}

func (r *recordingNotifier) NotifyPayment(_ context.Context, o models.Order) error {
	r.orders = append(r.orders, o)
	return r.err
}

type failingPrinter struct{}

func (failingPrinter) Print(context.Context, string, string) error {
	return errors.New("paper jam")
}

type fixture struct {
	shell    *Shell
	store    *db.MemoryStore
	printed  *bytes.Buffer
	notifier *recordingNotifier
}

func setupShell(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	log := logger.Discard()
	store := db.NewMemoryStore()
	printed := &bytes.Buffer{}
	n := &recordingNotifier{}

	s := New(Deps{
		Catalog: catalog.Default(),
		Cart:    cart.New(ctx, store, log),
		Form: checkout.NewForm(
			checkout.WithNumberGenerator(stubNumbers{}),
			checkout.WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }),
		),
		Printer:  printer.NewWriterPrinter(printed),
		Notifier: n,
		Logger:   log,
	})
	return fixture{shell: s, store: store, printed: printed, notifier: n}
}

func str(s string) *string { return &s }

func fillCustomer(t *testing.T, s *Shell) {
	t.Helper()
	_, _, err := s.UpdateForm(checkout.Patch{CustomerName: str("Nimal"), Contact: str("0771234567")})
	require.NoError(t, err)
}

func TestAddToCart(t *testing.T) {
	f := setupShell(t)
	ctx := context.Background()

	view, err := f.shell.AddToCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 150, view.Total)

	_, err = f.shell.AddToCart(ctx, 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Len(t, f.shell.Cart().Items, 1)
}

func TestCartOperations(t *testing.T) {
	f := setupShell(t)
	ctx := context.Background()

	f.shell.AddToCart(ctx, 1)
	f.shell.AddToCart(ctx, 2)
	view := f.shell.IncreaseQuantity(ctx, 1)
	assert.Equal(t, 440, view.Total)

	view = f.shell.DecreaseQuantity(ctx, 1)
	assert.Equal(t, 290, view.Total)

	view = f.shell.RemoveFromCart(ctx, 1)
	assert.Equal(t, 140, view.Total)
	assert.Len(t, view.Items, 1)
}

func TestCheckoutUnavailable(t *testing.T) {
	f := setupShell(t)
	fillCustomer(t, f.shell)

	assert.False(t, f.shell.CanCheckout(), "cart is empty")

	_, err := f.shell.Checkout(context.Background())
	assert.ErrorIs(t, err, checkout.ErrCheckoutUnavailable)
	_, ok := f.shell.CurrentOrder()
	assert.False(t, ok)
}

func TestCheckoutFlow(t *testing.T) {
	f := setupShell(t)
	ctx := context.Background()

	f.shell.AddToCart(ctx, 1)
	f.shell.AddToCart(ctx, 1)
	f.shell.AddToCart(ctx, 2)
	fillCustomer(t, f.shell)
	require.True(t, f.shell.CanCheckout())

	order, err := f.shell.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORD-777777", order.Number)
	assert.Equal(t, 440, order.Total)

	current, ok := f.shell.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, order, current)

	assert.Empty(t, f.shell.Cart().Items)
	saved, _, _ := f.store.Get(ctx, cart.StorageKey)
	assert.Equal(t, "[]", saved)

	require.Len(t, f.notifier.orders, 1)
	assert.Equal(t, order.Number, f.notifier.orders[0].Number)

	doc, err := f.shell.Receipt()
	require.NoError(t, err)
	assert.Contains(t, doc, "Order No: ORD-777777")

	require.NoError(t, f.shell.Print(ctx))
	assert.Equal(t, doc, f.printed.String())

	f.shell.NewOrder()
	_, ok = f.shell.CurrentOrder()
	assert.False(t, ok)
}

func TestCardValidationFailureChangesNothing(t *testing.T) {
	f := setupShell(t)
	ctx := context.Background()

	f.shell.AddToCart(ctx, 3)
	fillCustomer(t, f.shell)
	_, _, err := f.shell.UpdateForm(checkout.Patch{
		PaymentMethod: str("Card"),
		CardNumber:    str("1234"),
		Expiry:        str("1224"),
		CVV:           str("123"),
	})
	require.NoError(t, err)

	_, err = f.shell.Checkout(ctx)
	var verr *checkout.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "card_number", verr.Field)

	assert.Len(t, f.shell.Cart().Items, 1)
	_, ok := f.shell.CurrentOrder()
	assert.False(t, ok)
	assert.Empty(t, f.notifier.orders)
	fields, _ := f.shell.Form()
	assert.Equal(t, "1234", fields.CardNumber)
}

func TestNotifierFailureDoesNotFailCheckout(t *testing.T) {
	f := setupShell(t)
	f.notifier.err = errors.New("gateway down")
	ctx := context.Background()

	f.shell.AddToCart(ctx, 2)
	fillCustomer(t, f.shell)

	_, err := f.shell.Checkout(ctx)
	require.NoError(t, err)
	_, ok := f.shell.CurrentOrder()
	assert.True(t, ok)
}

func TestNewOrderLeavesCartAlone(t *testing.T) {
	f := setupShell(t)
	ctx := context.Background()

	f.shell.AddToCart(ctx, 2)
	fillCustomer(t, f.shell)
	_, err := f.shell.Checkout(ctx)
	require.NoError(t, err)

	f.shell.AddToCart(ctx, 1)
	f.shell.NewOrder()
	assert.Len(t, f.shell.Cart().Items, 1)
}

func TestReceiptAndPrintWithoutOrder(t *testing.T) {
	f := setupShell(t)

	_, err := f.shell.Receipt()
	assert.ErrorIs(t, err, ErrNoCurrentOrder)
	assert.ErrorIs(t, f.shell.Print(context.Background()), ErrNoCurrentOrder)
}

func TestPrintFailure(t *testing.T) {
	f := setupShell(t)
	f.shell.printer = failingPrinter{}
	ctx := context.Background()

	f.shell.AddToCart(ctx, 2)
	fillCustomer(t, f.shell)
	_, err := f.shell.Checkout(ctx)
	require.NoError(t, err)

	err = f.shell.Print(ctx)
	assert.EqualError(t, err, "print ORD-777777: paper jam")
	_, ok := f.shell.CurrentOrder()
	assert.True(t, ok, "a failed print keeps the order")
}
