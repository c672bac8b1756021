package translate

import (
	"context"

	"soga/quote_backend/internal/domain/quotation"
)

// Translator produces a copy of a document with the human-readable text
// fields translated into the target language. Structure, identities and
// numeric fields are preserved.
type Translator interface {
	Translate(ctx context.Context, doc quotation.Document, target quotation.Language) (quotation.Document, error)
}

// Merge folds a machine-translated document back onto its source. Only text
// fields are taken from the translation, and only where the translation kept
// the section/item in place; identities, quantities, prices, the VAT rate and
// section order always come from the source. The result is resequenced so the
// Roman labels cannot drift.
func Merge(src, translated quotation.Document, target quotation.Language) quotation.Document {
	out := src
	out.Language = target
	out.Customer.ProjectName = fallback(translated.Customer.ProjectName, src.Customer.ProjectName)
	out.Terms.Payment = fallback(translated.Terms.Payment, src.Terms.Payment)
	out.Terms.Notes = fallback(translated.Terms.Notes, src.Terms.Notes)

	sections := make([]quotation.Section, len(src.Sections))
	for i, sec := range src.Sections {
		merged := sec
		items := make([]quotation.LineItem, len(sec.Items))
		copy(items, sec.Items)
		if i < len(translated.Sections) {
			tr := translated.Sections[i]
			merged.Title = fallback(tr.Title, sec.Title)
			for j := range items {
				if j >= len(tr.Items) {
					break
				}
				items[j].Name = fallback(tr.Items[j].Name, items[j].Name)
				items[j].Description = fallback(tr.Items[j].Description, items[j].Description)
				items[j].Unit = fallback(tr.Items[j].Unit, items[j].Unit)
			}
		}
		merged.Items = items
		sections[i] = merged
	}
	out.Sections = quotation.Resequence(sections)
	return out
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
