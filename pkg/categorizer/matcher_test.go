package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allKnown(string) bool { return true }

func TestMatcher_Suggest(t *testing.T) {
	matcher := NewMatcher()

	tests := []struct {
		name        string
		description string
		wantID      string
		wantOK      bool
	}{
		{
			name:        "longer keyword wins over its substring",
			description: "beli airpam bulan ini",
			wantID:      "utilitas",
			wantOK:      true,
		},
		{
			name:        "short keyword still matches alone",
			description: "galon air isi ulang",
			wantID:      "pokok",
			wantOK:      true,
		},
		{
			name:        "matching is case insensitive",
			description: "Bayar LISTRIK bulan ini",
			wantID:      "utilitas",
			wantOK:      true,
		},
		{
			name:        "substring containment, no word boundaries",
			description: "perbaikanrumah",
			wantID:      "darurat",
			wantOK:      true,
		},
		{
			name:        "no keyword matches",
			description: "xyz",
			wantID:      "",
			wantOK:      false,
		},
		{
			name:        "empty description",
			description: "",
			wantID:      "",
			wantOK:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := matcher.Suggest(tt.description, allKnown)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestMatcher_Suggest_deletedCategory(t *testing.T) {
	matcher := NewMatcher()

	// The matched keyword points at a category the user deleted: no
	// suggestion may be produced, and no fallback to shorter keywords.
	id, ok := matcher.Suggest("beli airpam bulan ini", func(categoryID string) bool {
		return categoryID != "utilitas"
	})

	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestMatcher_Suggest_deterministic(t *testing.T) {
	a := NewMatcher()
	b := NewMatcher()

	for _, description := range []string{"beli beras", "bayar wifi", "nonton bioskop", "servis motor"} {
		idA, okA := a.Suggest(description, allKnown)
		idB, okB := b.Suggest(description, allKnown)
		assert.Equal(t, okA, okB)
		assert.Equal(t, idA, idB)
	}
}
