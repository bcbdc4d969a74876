// Package cart implements the till's shopping cart. The cart is persisted to
// a key-value store after every mutation and reloaded once at construction.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Keoroanthony/go-pos/internal/db"
	"github.com/Keoroanthony/go-pos/internal/logger"
	"github.com/Keoroanthony/go-pos/internal/models"
)

// StorageKey is the key the cart is saved under.
const StorageKey = "pos-cart"

var errMalformed = errors.New("malformed cart")

// Cart is not safe for concurrent use; the shell serializes access.
type Cart struct {
	lines []models.CartLine
	store db.Store
	log   *logger.Logger
}

// New loads the cart saved in store. Missing, unreadable or malformed data
// yields an empty cart.
func New(ctx context.Context, store db.Store, log *logger.Logger) *Cart {
	c := &Cart{store: store, log: log}

	raw, ok, err := store.Get(ctx, StorageKey)
	if err != nil {
		log.Warn("cart_load_failed", "", "could not read saved cart, starting empty", err)
		return c
	}
	if !ok {
		return c
	}

	lines, err := decode(raw)
	if err != nil {
		log.Warn("cart_load_failed", "", "discarding saved cart", err)
		return c
	}
	c.lines = lines
	log.Info("cart_loaded", "", "restored saved cart", map[string]any{"lines": len(lines)})
	return c
}

func decode(raw string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformed, err)
	}

	seen := make(map[int]bool, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, fmt.Errorf("%w: product %d has quantity %d", errMalformed, l.Product.ID, l.Quantity)
		}
		if seen[l.Product.ID] {
			return nil, fmt.Errorf("%w: product %d listed twice", errMalformed, l.Product.ID)
		}
		seen[l.Product.ID] = true
	}
	return lines, nil
}

func (c *Cart) Add(ctx context.Context, p models.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
	} else {
		c.lines = append(c.lines, models.CartLine{Product: p, Quantity: 1})
	}
	c.save(ctx)
}

func (c *Cart) Increase(ctx context.Context, productID int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	c.lines[i].Quantity++
	c.save(ctx)
}

// Decrease drops the line when its quantity would reach zero.
func (c *Cart) Decrease(ctx context.Context, productID int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
	} else {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
	c.save(ctx)
}

func (c *Cart) Remove(ctx context.Context, productID int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.save(ctx)
}

func (c *Cart) Clear(ctx context.Context) {
	c.lines = nil
	c.save(ctx)
}

func (c *Cart) Total() int {
	total := 0
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []models.CartLine {
	return append([]models.CartLine(nil), c.lines...)
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) index(productID int) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

// save writes the whole cart. Failures are logged; the in-memory cart wins.
func (c *Cart) save(ctx context.Context) {
	lines := c.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		c.log.Error("cart_save_failed", "", "could not encode cart", err)
		return
	}
	if err := c.store.Set(ctx, StorageKey, string(data)); err != nil {
		c.log.Error("cart_save_failed", "", "could not persist cart", err)
	}
}
