package quotation

import "github.com/shopspring/decimal"

// Totals is the money summary of a document. All values are whole đồng.
type Totals struct {
	Subtotal  int64 `json:"subtotal"`
	VATAmount int64 `json:"vatAmount"`
	Total     int64 `json:"total"`
}

// ComputeTotals recomputes the totals from scratch. It is cheap at this data
// scale and deliberately uncached: a stale total on a printed quote is worse
// than the recomputation. VAT is subtotal × rate / 100 rounded half away
// from zero to the whole đồng.
func ComputeTotals(sections []Section, vatRate float64) Totals {
	var subtotal int64
	for _, sec := range sections {
		for _, it := range sec.Items {
			subtotal += it.LineAmount()
		}
	}

	vat := decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromFloat(vatRate)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	return Totals{
		Subtotal:  subtotal,
		VATAmount: vat,
		Total:     subtotal + vat,
	}
}
