package stockbook

import (
	"iter"
	"maps"
	"slices"
)

// Product is the stock of one product: its last purchase price and the
// quantity on hand.
type Product struct {
	Price    Money
	Quantity Quantity
}

// Warehouse maps product names to their stock.
//
// Products are never removed, a sold out product stays with a zero quantity.
type Warehouse struct {
	products map[string]Product
}

// NewWarehouse creates an empty warehouse.
func NewWarehouse() *Warehouse {
	return &Warehouse{products: make(map[string]Product)}
}

// Product returns the stock of a product and whether it is known.
func (w *Warehouse) Product(name string) (Product, bool) {
	p, ok := w.products[name]
	return p, ok
}

// Len returns the number of products, sold out ones included.
func (w *Warehouse) Len() int { return len(w.products) }

// IsEmpty reports whether the warehouse has never stocked a product.
func (w *Warehouse) IsEmpty() bool { return len(w.products) == 0 }

// Names returns product names in sorted order.
func (w *Warehouse) Names() []string {
	return slices.Sorted(maps.Keys(w.products))
}

// All iterates over products sorted by name.
func (w *Warehouse) All() iter.Seq2[string, Product] {
	return func(yield func(string, Product) bool) {
		for _, name := range w.Names() {
			if !yield(name, w.products[name]) {
				return
			}
		}
	}
}

// Equal reports whether both warehouses hold the same products.
func (w *Warehouse) Equal(v *Warehouse) bool {
	return maps.EqualFunc(w.products, v.products, func(a, b Product) bool {
		return a.Quantity == b.Quantity && a.Price.Equal(b.Price)
	})
}

// set replaces the stock of a product.
func (w *Warehouse) set(name string, p Product) {
	w.products[name] = p
}
