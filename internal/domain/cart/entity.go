// internal/domain/cart/entity.go
package cart

import "strings"

// LineItem represents "one line item" in a cart.
// JSON field names match the persisted slot layout (see SlotField):
// id, title, price, image, size, color, quantity, stock.
type LineItem struct {
	ProductID string  `json:"id" firestore:"id"`
	Title     string  `json:"title" firestore:"title"`
	UnitPrice float64 `json:"price" firestore:"price"`
	Image     string  `json:"image" firestore:"image"`
	Size      string  `json:"size" firestore:"size"`
	Color     string  `json:"color" firestore:"color"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
	Stock     int     `json:"stock" firestore:"stock"`
}

// ItemKey identifies a cart entry.
// Two items with the same product but a different size or color are distinct entries.
type ItemKey struct {
	ProductID string
	Size      string
	Color     string
}

func (it LineItem) Key() ItemKey {
	return ItemKey{
		ProductID: strings.TrimSpace(it.ProductID),
		Size:      strings.TrimSpace(it.Size),
		Color:     strings.TrimSpace(it.Color),
	}
}

// Cart is the in-memory cart state: an ordered sequence of line items.
// Subtotal and ItemCount are always derived from Items, never stored.
//
// Every operation is total: invalid input is clamped or dropped, never rejected.
// Quantity stays within (0, stock]; an entry that reaches quantity 0 is removed.
type Cart struct {
	Items []LineItem
}

// New builds a cart from items (nil is treated as empty).
// Items are sanitized the same way Hydrate sanitizes a persisted sequence.
func New(items []LineItem) Cart {
	c := Cart{}
	c.Hydrate(items)
	return c
}

// Add merges item into the cart.
// If an entry with the same (product, size, color) exists, its quantity grows by
// item.Quantity but is silently clamped to the entry's stock — the excess is dropped,
// not rejected. Otherwise the item is appended, preserving insertion order.
func (c *Cart) Add(item LineItem) {
	key := item.Key()
	if key.ProductID == "" {
		return
	}

	if idx := c.indexOf(key); idx >= 0 {
		ex := c.Items[idx]
		ex.Quantity = clamp(ex.Quantity+item.Quantity, 0, ex.Stock)
		if ex.Quantity <= 0 {
			c.Items = removeIndex(c.Items, idx)
			return
		}
		c.Items[idx] = ex
		return
	}

	item.ProductID = key.ProductID
	item.Size = key.Size
	item.Color = key.Color
	item.Quantity = clamp(item.Quantity, 0, item.Stock)
	if item.Quantity <= 0 {
		return
	}
	c.Items = append(c.Items, item)
}

// SetQuantity sets the quantity for key, clamped to [0, stock].
// A resulting quantity of 0 removes the entry. Unknown keys are a no-op.
func (c *Cart) SetQuantity(key ItemKey, quantity int) {
	idx := c.indexOf(key)
	if idx < 0 {
		return
	}

	q := clamp(quantity, 0, c.Items[idx].Stock)
	if q <= 0 {
		c.Items = removeIndex(c.Items, idx)
		return
	}
	c.Items[idx].Quantity = q
}

// Remove deletes the entry for key. Removing an absent key is a no-op (idempotent).
func (c *Cart) Remove(key ItemKey) {
	c.SetQuantity(key, 0)
}

// Clear resets the cart to the empty state.
func (c *Cart) Clear() {
	c.Items = nil
}

// Hydrate replaces the items wholesale with a previously persisted sequence.
// The sequence is sanitized: duplicate keys are merged (first occurrence keeps its
// position), quantities are clamped to stock, and entries that end up at 0 or have
// no product id are dropped.
func (c *Cart) Hydrate(items []LineItem) {
	c.Items = nil
	for _, it := range items {
		c.Add(it)
	}
}

// Subtotal is Σ price × quantity over all items.
func (c Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

// ItemCount is Σ quantity over all items.
func (c Cart) ItemCount() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) indexOf(key ItemKey) int {
	for i := range c.Items {
		if c.Items[i].Key() == key {
			return i
		}
	}
	return -1
}

func removeIndex(items []LineItem, idx int) []LineItem {
	if idx < 0 || idx >= len(items) {
		return items
	}
	// preserve order
	return append(items[:idx], items[idx+1:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
