package codegen

import "fmt"

// ValidationReason classifies why an identifier was rejected
type ValidationReason string

const (
	ReasonInvalid   ValidationReason = "invalid"   // Fails the identifier grammar
	ReasonKeyword   ValidationReason = "keyword"   // Reserved word of the target language
	ReasonContainer ValidationReason = "container" // Same as the enclosing class name
	ReasonDuplicate ValidationReason = "duplicate" // Already declared by another entry
)

// ValidationError reports an entry that cannot be rendered
type ValidationError struct {
	Identifier    string
	DisplayName   string
	ConflictsWith string // Display name of the earlier entry, for duplicates
	Reason        ValidationReason
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonDuplicate:
		return fmt.Sprintf("duplicate identifier %q: %q collides with %q", e.Identifier, e.DisplayName, e.ConflictsWith)
	case ReasonKeyword:
		return fmt.Sprintf("identifier %q derived from %q is a reserved keyword", e.Identifier, e.DisplayName)
	case ReasonContainer:
		return fmt.Sprintf("identifier %q derived from %q clashes with the container name", e.Identifier, e.DisplayName)
	default:
		return fmt.Sprintf("invalid identifier %q derived from %q", e.Identifier, e.DisplayName)
	}
}
