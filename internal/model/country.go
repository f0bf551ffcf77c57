package model

// CountryRecord is one country as decoded from the dataset.
// Only the fields the generator consumes are kept.
type CountryRecord struct {
	DisplayName string `json:"display_name"` // name.common in the source dataset
}

// NormalizedEntry is a record ready for rendering
type NormalizedEntry struct {
	Identifier  string `json:"identifier"`   // Declared member name
	DisplayName string `json:"display_name"` // Verbatim name, rendered as the literal value
}
