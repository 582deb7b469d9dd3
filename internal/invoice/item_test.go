package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem(t *testing.T) {
	items := AddItem(nil)
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Zero(t, items[0].Rate)
	assert.Zero(t, items[0].Amount)
	assert.Empty(t, items[0].Description)

	items = AddItem(items)
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestUpdateItem(t *testing.T) {
	base := []Item{
		{ID: "a", Description: "Labor", Quantity: 2, Rate: 50, Amount: 100},
		{ID: "b", Description: "Parts", Quantity: 1, Rate: 25, Amount: 25},
	}

	t.Run("rate edit reparses and recomputes amount", func(t *testing.T) {
		out := UpdateItem(base, "a", FieldRate, "$75.509")
		assert.Equal(t, 75.50, out[0].Rate)
		assert.Equal(t, 151.00, out[0].Amount)
		// other lines untouched
		assert.Equal(t, base[1], out[1])
	})

	t.Run("unparseable rate becomes zero", func(t *testing.T) {
		out := UpdateItem(base, "a", FieldRate, "abc")
		assert.Zero(t, out[0].Rate)
		assert.Zero(t, out[0].Amount)
	})

	t.Run("quantity edit coerces and recomputes", func(t *testing.T) {
		out := UpdateItem(base, "b", FieldQuantity, "4")
		assert.Equal(t, 4, out[1].Quantity)
		assert.Equal(t, 100.00, out[1].Amount)
	})

	t.Run("bad quantity coerces to zero", func(t *testing.T) {
		out := UpdateItem(base, "b", FieldQuantity, "four")
		assert.Zero(t, out[1].Quantity)
		assert.Zero(t, out[1].Amount)
	})

	t.Run("negative quantity clamps to zero", func(t *testing.T) {
		out := UpdateItem(base, "b", FieldQuantity, "-4")
		assert.Zero(t, out[1].Quantity)
		assert.Zero(t, out[1].Amount)
	})

	t.Run("description taken verbatim", func(t *testing.T) {
		out := UpdateItem(base, "a", FieldDescription, "  On-site labor  ")
		assert.Equal(t, "  On-site labor  ", out[0].Description)
		assert.Equal(t, 100.00, out[0].Amount)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		out := UpdateItem(base, "zzz", FieldRate, "999")
		assert.Equal(t, base, out)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		_ = UpdateItem(base, "a", FieldRate, "999")
		assert.Equal(t, 50.0, base[0].Rate)
	})
}

func TestRemoveItem(t *testing.T) {
	base := []Item{{ID: "a"}, {ID: "b"}}

	out := RemoveItem(base, "a")
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)

	t.Run("removing the last line yields empty slice", func(t *testing.T) {
		out := RemoveItem(out, "b")
		assert.Empty(t, out)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		out := RemoveItem(base, "zzz")
		assert.Len(t, out, 2)
	})
}

func TestNormalize(t *testing.T) {
	items := Normalize([]Item{
		{ID: "a", Quantity: 3, Rate: 9.99, Amount: 12345}, // client-sent amount ignored
		{Quantity: 1, Rate: 5},
	})
	assert.Equal(t, 29.97, items[0].Amount)
	assert.NotEmpty(t, items[1].ID)
	assert.Equal(t, 5.00, items[1].Amount)

	t.Run("negative quantity and rate clamp to zero", func(t *testing.T) {
		items := Normalize([]Item{
			{ID: "a", Quantity: -3, Rate: 5},
			{ID: "b", Quantity: 2, Rate: -10},
		})
		assert.Zero(t, items[0].Quantity)
		assert.Zero(t, items[0].Amount)
		assert.Zero(t, items[1].Rate)
		assert.Zero(t, items[1].Amount)
		assert.False(t, HasBillableLine(items[:1]))
	})
}

func TestHasBillableLine(t *testing.T) {
	assert.False(t, HasBillableLine(nil))
	assert.False(t, HasBillableLine([]Item{{ID: "a", Quantity: 0}}))
	assert.True(t, HasBillableLine([]Item{{ID: "a", Quantity: 0}, {ID: "b", Quantity: 2}}))
}
