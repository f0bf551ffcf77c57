package codegen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/ppiankov/countrygen/internal/model"
)

// Renderer turns normalized entries into the generated source file
type Renderer struct {
	container string
	namespace string
	header    *template.Template
	entry     *template.Template
	footer    *template.Template
}

// envelopeData is exposed to the header and footer templates
type envelopeData struct {
	Namespace string
	Container string
	Count     int
}

// entryData is exposed to the entry template
type entryData struct {
	Index      int
	Identifier string
	Name       string // Verbatim display name
	Literal    string // Display name escaped for a string literal
}

// NewRenderer parses the envelope templates
func NewRenderer(tmpl model.Template) (*Renderer, error) {
	if tmpl.Container == "" {
		return nil, fmt.Errorf("template container name is empty")
	}

	header, err := parseTemplate("header", tmpl.Header)
	if err != nil {
		return nil, err
	}
	entry, err := parseTemplate("entry", tmpl.Entry)
	if err != nil {
		return nil, err
	}
	footer, err := parseTemplate("footer", tmpl.Footer)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		container: tmpl.Container,
		namespace: tmpl.Namespace,
		header:    header,
		entry:     entry,
		footer:    footer,
	}, nil
}

func parseTemplate(name, text string) (*template.Template, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", name, err)
	}
	return t, nil
}

// Render validates entries and returns the complete artifact text.
// Nothing is rendered when validation fails.
func (r *Renderer) Render(entries []model.NormalizedEntry) (string, error) {
	if err := r.Validate(entries); err != nil {
		return "", err
	}

	env := envelopeData{
		Namespace: r.namespace,
		Container: r.container,
		Count:     len(entries),
	}

	var b strings.Builder
	if err := r.header.Execute(&b, env); err != nil {
		return "", fmt.Errorf("render header: %w", err)
	}

	var line strings.Builder
	for i, e := range entries {
		line.Reset()
		err := r.entry.Execute(&line, entryData{
			Index:      i,
			Identifier: e.Identifier,
			Name:       e.DisplayName,
			Literal:    EscapeLiteral(e.DisplayName),
		})
		if err != nil {
			return "", fmt.Errorf("render entry %q: %w", e.DisplayName, err)
		}

		text := strings.TrimSuffix(line.String(), "\n")
		if strings.ContainsAny(text, "\r\n") {
			return "", fmt.Errorf("render entry %q: declaration spans more than one line", e.DisplayName)
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}

	if err := r.footer.Execute(&b, env); err != nil {
		return "", fmt.Errorf("render footer: %w", err)
	}

	return b.String(), nil
}

// Validate checks every identifier against the target grammar and for
// collisions. The first problem found is returned as *ValidationError.
func (r *Renderer) Validate(entries []model.NormalizedEntry) error {
	seen := make(map[string]string, len(entries))

	for _, e := range entries {
		switch {
		case !IsIdentifier(e.Identifier):
			return &ValidationError{Identifier: e.Identifier, DisplayName: e.DisplayName, Reason: ReasonInvalid}
		case IsKeyword(e.Identifier):
			return &ValidationError{Identifier: e.Identifier, DisplayName: e.DisplayName, Reason: ReasonKeyword}
		case e.Identifier == r.container:
			return &ValidationError{Identifier: e.Identifier, DisplayName: e.DisplayName, Reason: ReasonContainer}
		}

		if prev, dup := seen[e.Identifier]; dup {
			return &ValidationError{
				Identifier:    e.Identifier,
				DisplayName:   e.DisplayName,
				ConflictsWith: prev,
				Reason:        ReasonDuplicate,
			}
		}
		seen[e.Identifier] = e.DisplayName
	}

	return nil
}

// EscapeLiteral escapes s for use inside a regular C# string literal
func EscapeLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u0085', '\u2028', '\u2029':
			// line terminators in C# source
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
