// Package catalog holds the static product list sold at the till.
package catalog

import "github.com/Keoroanthony/go-pos/internal/models"

var defaultProducts = []models.Product{
	{ID: 1, Name: "Coca Cola", Price: 150, Image: "images/Coca Cola.jpg"},
	{ID: 2, Name: "Pepsi", Price: 140, Image: "images/Pepsi.jpg"},
	{ID: 3, Name: "Water Bottle", Price: 100, Image: "images/Water.jpg"},
}

type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// Default returns the built-in product list.
func Default() *Catalog {
	return New(defaultProducts)
}

// New builds a catalog from products. Later duplicates of an id are ignored.
func New(products []models.Product) *Catalog {
	c := &Catalog{byID: make(map[int]models.Product, len(products))}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = p
		c.products = append(c.products, p)
	}
	return c
}

func (c *Catalog) Products() []models.Product {
	return append([]models.Product(nil), c.products...)
}

func (c *Catalog) Find(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}
