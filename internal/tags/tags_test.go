package tags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/artist-directory/internal/tags"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "Pop", []string{"Pop"}},
		{"trims_pieces", " Pop ,  Rock ", []string{"Pop", "Rock"}},
		{"drops_empty_pieces", "Pop,,Rock,", []string{"Pop", "Rock"}},
		{"only_commas", ", ,", []string{}},
		{"keeps_duplicates", "Pop, Pop", []string{"Pop", "Pop"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tags.Split(tt.raw))
		})
	}
}

// Split(Join(Split(s))) must equal Split(s): re-saving an unchanged
// column never alters what readers see.
func TestSplitJoinRoundTrip(t *testing.T) {
	raws := []string{
		"",
		"Pop",
		" Pop , Rock,,Cumbia ",
		"Reggaetón,  Trap",
	}
	for _, raw := range raws {
		first := tags.Split(raw)
		again := tags.Split(tags.Join(first))
		assert.Equal(t, first, again, "raw=%q", raw)
	}
}

func TestCanonicalGenre(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"regaeton", "Reggaetón"},
		{"Reggaeton", "Reggaetón"},
		{"REGUETON", "Reggaetón"},
		{"hip-hop", "Rap / Hip-Hop"},
		{"rap", "Rap / Hip-Hop"},
		{"electronica", "Electrónica"},
		{"Electrónica", "Electrónica"}, // diacritics fold to the same key
		{"r&b", "Soul / R&B"},
		{"Villancicos", "Villancicos"}, // unknown genres pass through untouched
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := tags.CanonicalGenre(tt.in)
			assert.Equal(t, tt.want, got)
			// Canonical names are fixed points of the mapping.
			assert.Equal(t, got, tags.CanonicalGenre(got))
		})
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"keeps_first_seen", []string{"Pop", "pop", "POP"}, []string{"Pop"}},
		{"folds_diacritics", []string{"Electrónica", "electronica"}, []string{"Electrónica"}},
		{"preserves_order", []string{"Rock", "Pop", "rock"}, []string{"Rock", "Pop"}},
		{"empty", []string{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tags.Dedupe(tt.in))
		})
	}
}

func TestCanonicalGenres(t *testing.T) {
	// Two spellings of the same genre collapse after canonicalization
	// even though their raw forms fold to different keys.
	got := tags.CanonicalGenres([]string{"regaeton", "Reggaetón", "Pop"})
	assert.Equal(t, []string{"Reggaetón", "Pop"}, got)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Luna Park", "luna-park"},
		{"diacritics", "José Núñez", "jose-nunez"},
		{"punctuation_collapses", "DJ -- Nico!!", "dj-nico"},
		{"leading_trailing", "  ¡Hola!  ", "hola"},
		{"digits_kept", "Banda 910", "banda-910"},
		{"all_symbols", "¡¡¡", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tags.Slug(tt.in))
		})
	}
}
