package codegen

import (
	"slices"
	"strings"

	"github.com/ppiankov/countrygen/internal/model"
)

// SortRecords returns a copy of records in ascending display name order.
// Names are compared byte by byte, which for UTF-8 equals code point order
// and does not depend on the process locale. Equal names keep their input order.
func SortRecords(records []model.CountryRecord) []model.CountryRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b model.CountryRecord) int {
		return strings.Compare(a.DisplayName, b.DisplayName)
	})
	return sorted
}
