package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soga/quote_backend/internal/domain/quotation"
)

func srcDocument() quotation.Document {
	return quotation.Document{
		Language: quotation.LanguageVI,
		Customer: quotation.CustomerInfo{
			CompanyName:   "CÔNG TY TNHH ADVENTURE OCEAN",
			ProjectName:   "Xây dựng thương hiệu số",
			ContactPerson: "Chị Vi",
		},
		VATRate: 8,
		Terms:   quotation.Terms{Payment: "Thanh toán 50%", Notes: "Ghi chú"},
		Sections: quotation.Resequence([]quotation.Section{
			{
				ID:    "s1",
				Title: "WEBSITE & HẠ TẦNG",
				Items: []quotation.LineItem{
					{ID: "i1", Name: "Thiết kế Website", Description: "Chuẩn SEO", Unit: "Dự án", Quantity: 1, Price: 18000000},
				},
			},
		}),
	}
}

func TestMergeTakesTextKeepsNumbers(t *testing.T) {
	src := srcDocument()
	translated := src
	translated.Terms = quotation.Terms{Payment: "Pay 50%", Notes: "Notes"}
	translated.Customer.ProjectName = "Digital brand build-out"
	translated.Sections = []quotation.Section{
		{
			ID:         "model-invented-id",
			Title:      "WEBSITE & INFRASTRUCTURE",
			RomanIndex: "IV",
			Items: []quotation.LineItem{
				{ID: "other", Name: "Website design", Description: "SEO-ready", Unit: "Project", Quantity: 99, Price: 1},
			},
		},
	}

	got := Merge(src, translated, quotation.LanguageEN)

	assert.Equal(t, quotation.LanguageEN, got.Language)
	assert.Equal(t, "Pay 50%", got.Terms.Payment)
	assert.Equal(t, "Digital brand build-out", got.Customer.ProjectName)

	require.Len(t, got.Sections, 1)
	sec := got.Sections[0]
	assert.Equal(t, "s1", sec.ID, "identity comes from the source")
	assert.Equal(t, "WEBSITE & INFRASTRUCTURE", sec.Title)
	assert.Equal(t, "I", sec.RomanIndex, "labels are re-derived, not trusted")

	require.Len(t, sec.Items, 1)
	it := sec.Items[0]
	assert.Equal(t, "i1", it.ID)
	assert.Equal(t, "Website design", it.Name)
	assert.Equal(t, "SEO-ready", it.Description)
	assert.Equal(t, "Project", it.Unit)
	assert.Equal(t, float64(1), it.Quantity, "quantity comes from the source")
	assert.Equal(t, int64(18000000), it.Price, "price comes from the source")
}

func TestMergeStructuralDriftFallsBack(t *testing.T) {
	src := srcDocument()

	// Model dropped the section list entirely.
	got := Merge(src, quotation.Document{}, quotation.LanguageEN)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, src.Sections[0].Title, got.Sections[0].Title)
	assert.Equal(t, src.Terms, got.Terms)

	// Model dropped the items of a section.
	translated := src
	translated.Sections = []quotation.Section{{Title: "Translated"}}
	got = Merge(src, translated, quotation.LanguageEN)
	require.Len(t, got.Sections[0].Items, 1)
	assert.Equal(t, "Thiết kế Website", got.Sections[0].Items[0].Name)
}

func TestMergeDoesNotMutateSource(t *testing.T) {
	src := srcDocument()
	translated := src
	translated.Sections = []quotation.Section{
		{Title: "X", Items: []quotation.LineItem{{Name: "Y"}}},
	}
	_ = Merge(src, translated, quotation.LanguageEN)
	assert.Equal(t, quotation.LanguageVI, src.Language)
	assert.Equal(t, "WEBSITE & HẠ TẦNG", src.Sections[0].Title)
	assert.Equal(t, "Thiết kế Website", src.Sections[0].Items[0].Name)
}
