package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tee(size string, qty int) LineItem {
	return LineItem{
		ProductID: "1",
		Title:     "Classic White T-Shirt",
		UnitPrice: 24.99,
		Image:     "/products/tshirts.jpg",
		Size:      size,
		Color:     "black",
		Quantity:  qty,
		Stock:     5,
	}
}

func TestEmptyCartAggregates(t *testing.T) {
	var c Cart
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, 0.0, c.Subtotal())
}

func TestAddSingleItem(t *testing.T) {
	var c Cart
	c.Add(tee("M", 1))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.ItemCount())
	assert.InDelta(t, 24.99, c.Subtotal(), 1e-9)
}

func TestAddMergesAndClampsToStock(t *testing.T) {
	var c Cart
	c.Add(tee("M", 2))
	c.Add(tee("M", 4))

	require.Len(t, c.Items, 1)
	// 2 + 4 clamped to stock 5, not 6
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestAddClampInvariantOverAnySequence(t *testing.T) {
	// final quantity == min(Σ requested, stock) for repeated adds of the same key
	requests := []int{1, 1, 2, 7, 3}
	var c Cart
	sum := 0
	for _, q := range requests {
		c.Add(tee("L", q))
		sum += q

		want := sum
		if want > 5 {
			want = 5
		}
		require.Len(t, c.Items, 1)
		assert.Equal(t, want, c.Items[0].Quantity)
		assert.Equal(t, want, c.ItemCount())
	}
}

func TestDistinctSizeColorAreDistinctEntries(t *testing.T) {
	var c Cart
	c.Add(tee("M", 1))
	c.Add(tee("L", 1))

	red := tee("M", 1)
	red.Color = "red"
	c.Add(red)

	assert.Len(t, c.Items, 3)
	assert.Equal(t, 3, c.ItemCount())
}

func TestInsertionOrderPreserved(t *testing.T) {
	var c Cart
	c.Add(tee("M", 1))
	c.Add(LineItem{ProductID: "2", Title: "Slim Fit Jeans", UnitPrice: 59.99, Size: "32", Color: "blue", Quantity: 1, Stock: 10})
	c.Add(tee("L", 1))
	c.Add(tee("M", 2)) // merge, must not move

	require.Len(t, c.Items, 3)
	assert.Equal(t, "M", c.Items[0].Size)
	assert.Equal(t, "2", c.Items[1].ProductID)
	assert.Equal(t, "L", c.Items[2].Size)
}

// Identity is the full (product, size, color) key for every operation. Removing one
// variant must leave the other variants of the same product in place.
func TestRemoveTargetsSingleVariant(t *testing.T) {
	var c Cart
	c.Add(tee("M", 1))
	c.Add(tee("L", 2))

	c.Remove(ItemKey{ProductID: "1", Size: "M", Color: "black"})

	require.Len(t, c.Items, 1)
	assert.Equal(t, "L", c.Items[0].Size)
	assert.Equal(t, 2, c.ItemCount())
}

func TestRemoveIsIdempotent(t *testing.T) {
	var c Cart
	c.Add(tee("M", 2))

	key := ItemKey{ProductID: "1", Size: "L", Color: "black"}
	c.Remove(key)
	before := append([]LineItem(nil), c.Items...)
	c.Remove(key)

	assert.Equal(t, before, c.Items)
	assert.Equal(t, 2, c.ItemCount())
}

func TestSetQuantityClampsAndRemoves(t *testing.T) {
	key := ItemKey{ProductID: "1", Size: "M", Color: "black"}

	var c Cart
	c.Add(tee("M", 2))

	c.SetQuantity(key, 99)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity) // clamped to stock

	c.SetQuantity(key, -3)
	assert.Empty(t, c.Items) // negative clamps to 0, entry removed

	c.Add(tee("M", 1))
	c.SetQuantity(key, 0)
	assert.Empty(t, c.Items)
}

func TestClear(t *testing.T) {
	var c Cart
	c.Add(tee("M", 2))
	c.Add(tee("L", 1))

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, 0.0, c.Subtotal())
}

func TestHydrateRoundTrip(t *testing.T) {
	var c Cart
	c.Add(tee("M", 2))
	c.Add(LineItem{ProductID: "3", Title: "Runner Sneaker", UnitPrice: 89.99, Size: "42", Color: "white", Quantity: 1, Stock: 4})

	saved := append([]LineItem(nil), c.Items...)

	var restored Cart
	restored.Hydrate(saved)

	assert.Equal(t, c.Items, restored.Items)
	assert.Equal(t, c.ItemCount(), restored.ItemCount())
	assert.InDelta(t, c.Subtotal(), restored.Subtotal(), 1e-9)
}

func TestHydrateSanitizesPersistedSequence(t *testing.T) {
	var c Cart
	c.Hydrate([]LineItem{
		tee("M", 9),                    // over stock -> clamp to 5
		tee("M", 1),                    // duplicate key -> merged (already at stock)
		{ProductID: "", Quantity: 3},   // blank id -> dropped
		{ProductID: "4", Quantity: 0},  // zero qty -> dropped
		{ProductID: "5", Quantity: 2, Stock: 1}, // clamp to 1
	})

	require.Len(t, c.Items, 2)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, "5", c.Items[1].ProductID)
	assert.Equal(t, 1, c.Items[1].Quantity)
	assert.Equal(t, 6, c.ItemCount())
}

// Aggregates must be consistent with items after every transition.
func TestAggregatesConsistentAfterEveryTransition(t *testing.T) {
	check := func(c Cart) {
		t.Helper()
		count := 0
		var subtotal float64
		for _, it := range c.Items {
			require.Greater(t, it.Quantity, 0)
			require.LessOrEqual(t, it.Quantity, it.Stock)
			count += it.Quantity
			subtotal += it.UnitPrice * float64(it.Quantity)
		}
		assert.Equal(t, count, c.ItemCount())
		assert.InDelta(t, subtotal, c.Subtotal(), 1e-9)
	}

	var c Cart
	c.Add(tee("M", 2))
	check(c)
	c.Add(tee("M", 10))
	check(c)
	c.SetQuantity(ItemKey{ProductID: "1", Size: "M", Color: "black"}, 3)
	check(c)
	c.Remove(ItemKey{ProductID: "1", Size: "M", Color: "black"})
	check(c)
	c.Clear()
	check(c)
}
