// Package invoice holds the pure line-item and totals arithmetic shared by
// the invoice service, the PDF renderer, and the API handlers.
package invoice

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/crmrapid/portal/internal/money"
)

// Item is a single invoice line. The JSON tags match the shape stored in
// the invoices.items jsonb column.
type Item struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Editable item fields accepted by UpdateItem.
const (
	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldRate        = "rate"
)

// AddItem returns items with a fresh blank line appended: quantity 1,
// zero rate, zero amount.
func AddItem(items []Item) []Item {
	out := make([]Item, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, Item{
		ID:       uuid.New().String(),
		Quantity: 1,
	})
	return out
}

// UpdateItem returns a copy of items with one field of the identified line
// changed. Rate edits run through money.Parse and recompute the amount;
// quantity edits coerce to a non-negative integer (0 on failure or a
// negative value) and recompute; the description is taken verbatim. An
// unknown id or field leaves the slice unchanged.
func UpdateItem(items []Item, id, field, value string) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	for i := range out {
		if out[i].ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			out[i].Description = value
		case FieldQuantity:
			qty, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || qty < 0 {
				qty = 0
			}
			out[i].Quantity = qty
			out[i].Amount = money.Round2(float64(out[i].Quantity) * out[i].Rate)
		case FieldRate:
			out[i].Rate = money.Parse(value)
			out[i].Amount = money.Round2(float64(out[i].Quantity) * out[i].Rate)
		}
		break
	}
	return out
}

// RemoveItem returns items without the identified line. Removing the last
// line is allowed; submission-time validation rejects empty invoices.
func RemoveItem(items []Item, id string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Normalize recomputes every line amount from quantity and rate. Derived
// values are never trusted from the client, and negative quantities or
// rates clamp to zero so a crafted payload cannot drive totals negative.
func Normalize(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.New().String()
		}
		if out[i].Quantity < 0 {
			out[i].Quantity = 0
		}
		out[i].Rate = money.Round2(out[i].Rate)
		if out[i].Rate < 0 {
			out[i].Rate = 0
		}
		out[i].Amount = money.Round2(float64(out[i].Quantity) * out[i].Rate)
	}
	return out
}

// HasBillableLine reports whether at least one line has a nonzero quantity.
func HasBillableLine(items []Item) bool {
	for _, it := range items {
		if it.Quantity != 0 {
			return true
		}
	}
	return false
}
