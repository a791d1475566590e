// Package tags normalizes the tag columns of an artist profile.
//
// Genres, climas and event types are persisted as a single comma-joined
// string. This package is the only place that knows about that
// encoding: it splits raw columns into ordered tag lists, maps
// free-text genre variants onto canonical display names, and derives
// URL slugs from artist names.
package tags

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Split converts a raw comma-joined tag column into an ordered list.
// Pieces are trimmed and empty results dropped. Order is preserved and
// duplicates are kept; de-duplication is a caller concern. A nil or
// empty input yields an empty list, never an error.
func Split(raw string) []string {
	out := []string{}
	if raw == "" {
		return out
	}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Join is the canonical inverse of Split. Split(Join(Split(s))) equals
// Split(s) for every raw column s.
func Join(list []string) string {
	return strings.Join(list, ", ")
}

// genreSynonyms maps a lookup key (lower-cased, diacritics stripped)
// to the canonical display name. Ported from the catalog's historic
// normalization dictionary; entries cover typos and spelling variants
// observed in stored profiles.
var genreSynonyms = map[string]string{
	// Reggaetón variations
	"regaeton":  "Reggaetón",
	"reggaeton": "Reggaetón",
	"regueton":  "Reggaetón",

	// Hip Hop / Rap variations
	"rap":           "Rap / Hip-Hop",
	"hiphop":        "Rap / Hip-Hop",
	"hip-hop":       "Rap / Hip-Hop",
	"rap / hip-hop": "Rap / Hip-Hop",
	"trap":          "Trap",

	// Standard genres
	"pop":         "Pop",
	"rock":        "Rock",
	"latino":      "Latino",
	"salsa":       "Salsa",
	"cumbia":      "Cumbia",
	"folklore":    "Folklore",
	"jazz":        "Jazz",
	"blues":       "Blues",
	"soul":        "Soul / R&B",
	"r&b":         "Soul / R&B",
	"soul / r&b":  "Soul / R&B",
	"electronica": "Electrónica",
	"indie":       "Indie",
	"infantil":    "Infantil",
	"tango":       "Tango",
	"clasica":     "Clásica",
	"metal":       "Metal",
	"punk":        "Punk",
	"funk":        "Funk",
}

// Key folds a tag into its lookup form: lower-cased, diacritics
// removed, surrounding whitespace trimmed. Two tags that fold to the
// same key are considered the same tag.
func Key(tag string) string {
	return strings.ToLower(strings.TrimSpace(stripMarks(tag)))
}

// CanonicalGenre maps a free-text genre onto its canonical display
// name. Unknown genres are returned unchanged with their original
// casing. Applying CanonicalGenre to its own output returns the same
// value.
func CanonicalGenre(tag string) string {
	if canon, ok := genreSynonyms[Key(tag)]; ok {
		return canon
	}
	return tag
}

// Dedupe removes duplicate tags by folded key, keeping the first-seen
// representative and the original order.
func Dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, t := range list {
		k := Key(t)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}
	return out
}

// CanonicalGenres maps every genre to its canonical name and then
// de-duplicates, so "regaeton, Reggaetón" collapses to one entry.
// Used when rendering public profiles; stored columns stay raw.
func CanonicalGenres(list []string) []string {
	canon := make([]string, 0, len(list))
	for _, t := range list {
		canon = append(canon, CanonicalGenre(t))
	}
	return Dedupe(canon)
}

var multiHyphen = regexp.MustCompile(`-{2,}`)

// Slug derives a URL-safe ASCII slug from an artist name: NFD
// normalization, combining marks removed, lower-cased, every other
// rune collapsed into single hyphens. Slugs are computed once when a
// profile is created and never recomputed afterwards.
func Slug(name string) string {
	s := strings.ToLower(stripMarks(name))
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, s)
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// stripMarks removes Unicode combining marks after NFD decomposition
// (é -> e + combining acute -> e).
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
