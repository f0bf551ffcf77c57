package codegen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/countrygen/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Aruba", "Aruba"},
		{"United States", "UnitedStates"},
		{"Bonaire, Sint Eustatius and Saba", "BonaireSintEustatiusandSaba"},
		{"Timor-Leste", "TimorLeste"},
		{"Cocos (Keeling) Islands", "CocosKeelingIslands"},
		{"Guinea-Bissau", "GuineaBissau"},
		{"Åland Islands", "ÅlandIslands"},
		{"Cote d'Ivoire", "Coted'Ivoire"},
		{"St. Lucia", "St.Lucia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.name); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestNormalize_StripsDenylistedCharacters(t *testing.T) {
	inputs := []string{
		"A B",
		"A,B",
		"A (B) C",
		"A-B-C",
		"Saint Helena, Ascension and Tristan da Cunha",
		"Congo (Democratic Republic of the)",
		"x - y , ( z )",
	}

	for _, in := range inputs {
		got := Normalize(in)
		if strings.ContainsAny(got, " ,()-") {
			t.Errorf("Normalize(%q) = %q still contains a denylisted character", in, got)
		}
		if got == "" {
			t.Errorf("Normalize(%q) returned an empty identifier", in)
		}
	}
}

func TestNormalize_OnlyDenylistedCharacters(t *testing.T) {
	if got := Normalize(" (-,) "); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}

func TestNormalizeStrict(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Cote d'Ivoire", "CotedIvoire"},
		{"St. Lucia", "StLucia"},
		{"São Tomé and Príncipe", "SãoToméandPríncipe"},
		{"Bonaire, Sint Eustatius and Saba", "BonaireSintEustatiusandSaba"},
		{"Korea (Republic of)", "KoreaRepublicof"},
		{"snake_case", "snake_case"},
		{"1st Republic", "1stRepublic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeStrict(tt.name); got != tt.want {
				t.Errorf("NormalizeStrict(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestNormalizerFor(t *testing.T) {
	fn, err := NormalizerFor(model.NormalizerDenylist)
	if err != nil {
		t.Fatalf("denylist: %v", err)
	}
	if got := fn("Cote d'Ivoire"); got != "Coted'Ivoire" {
		t.Errorf("denylist normalizer gave %q", got)
	}

	fn, err = NormalizerFor(model.NormalizerStrict)
	if err != nil {
		t.Fatalf("strict: %v", err)
	}
	if got := fn("Cote d'Ivoire"); got != "CotedIvoire" {
		t.Errorf("strict normalizer gave %q", got)
	}

	for _, mode := range []model.NormalizerMode{"title-case", ""} {
		if _, err := NormalizerFor(mode); err == nil {
			t.Errorf("expected error for mode %q", mode)
		}
	}
}

func TestNormalizeAll_PreservesOrderAndNames(t *testing.T) {
	records := []model.CountryRecord{
		{DisplayName: "Aruba"},
		{DisplayName: "Bahamas"},
		{DisplayName: "Cote d'Ivoire"},
	}

	got := NormalizeAll(records, Normalize)
	want := []model.NormalizedEntry{
		{Identifier: "Aruba", DisplayName: "Aruba"},
		{Identifier: "Bahamas", DisplayName: "Bahamas"},
		{Identifier: "Coted'Ivoire", DisplayName: "Cote d'Ivoire"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeAll mismatch (-want +got):\n%s", diff)
	}
}
