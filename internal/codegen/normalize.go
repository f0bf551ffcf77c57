package codegen

import (
	"fmt"
	"strings"

	"github.com/ppiankov/countrygen/internal/model"
)

// NormalizeFunc maps a display name to an identifier candidate
type NormalizeFunc func(displayName string) string

// denylist holds the characters stripped from display names. Anything else,
// apostrophes and dots included, passes through and is caught later by the
// renderer's identifier check.
var denylist = strings.NewReplacer(
	" ", "",
	",", "",
	"(", "",
	")", "",
	"-", "",
)

// Normalize strips spaces, commas, parentheses and hyphens from a display name.
func Normalize(displayName string) string {
	return denylist.Replace(displayName)
}

// NormalizeStrict keeps only the runes that may appear inside an identifier.
// A leading digit is kept as is; the renderer rejects it.
func NormalizeStrict(displayName string) string {
	var b strings.Builder
	b.Grow(len(displayName))
	for _, r := range displayName {
		if isIdentifierPart(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizerFor returns the normalizer selected by mode
func NormalizerFor(mode model.NormalizerMode) (NormalizeFunc, error) {
	switch mode {
	case model.NormalizerDenylist:
		return Normalize, nil
	case model.NormalizerStrict:
		return NormalizeStrict, nil
	default:
		return nil, fmt.Errorf("unknown normalizer %q", mode)
	}
}

// NormalizeAll converts sorted records into entries, preserving order
func NormalizeAll(records []model.CountryRecord, normalize NormalizeFunc) []model.NormalizedEntry {
	entries := make([]model.NormalizedEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, model.NormalizedEntry{
			Identifier:  normalize(rec.DisplayName),
			DisplayName: rec.DisplayName,
		})
	}
	return entries
}
