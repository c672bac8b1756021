package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soga/quote_backend/internal/domain/numword"
)

func TestTemplate(t *testing.T) {
	doc := Template()
	require.Len(t, doc.Sections, 4)
	assert.Equal(t, LanguageVI, doc.Language)
	assert.Equal(t, float64(8), doc.VATRate)

	seen := map[string]bool{}
	for i, sec := range doc.Sections {
		assert.NotEmpty(t, sec.ID)
		assert.False(t, seen[sec.ID], "duplicate section id")
		seen[sec.ID] = true
		assert.Equal(t, numword.ToRoman(i+1), sec.RomanIndex)
		for _, it := range sec.Items {
			assert.NotEmpty(t, it.ID)
			assert.False(t, seen[it.ID], "duplicate item id")
			seen[it.ID] = true
			assert.GreaterOrEqual(t, it.Price, int64(0))
		}
	}

	// Two calls never share identities.
	other := Template()
	assert.NotEqual(t, doc.Sections[0].ID, other.Sections[0].ID)
}
