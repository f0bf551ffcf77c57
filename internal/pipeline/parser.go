package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ppiankov/countrygen/internal/model"
)

// countryWire is the subset of a dataset entry the generator reads
type countryWire struct {
	Name *struct {
		Common *string `json:"common"`
	} `json:"name"`
}

// ParseCountries decodes a JSON array of country objects. Every element must
// carry a non-empty name.common string.
func ParseCountries(data []byte) ([]model.CountryRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("expected a JSON array of countries")
	}

	var wire []countryWire
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}

	records := make([]model.CountryRecord, 0, len(wire))
	for i, w := range wire {
		if w.Name == nil || w.Name.Common == nil {
			return nil, fmt.Errorf("country %d: missing name.common", i)
		}
		if *w.Name.Common == "" {
			return nil, fmt.Errorf("country %d: empty name.common", i)
		}
		records = append(records, model.CountryRecord{DisplayName: *w.Name.Common})
	}

	return records, nil
}
