package codegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/countrygen/internal/model"
)

func records(names ...string) []model.CountryRecord {
	out := make([]model.CountryRecord, 0, len(names))
	for _, n := range names {
		out = append(out, model.CountryRecord{DisplayName: n})
	}
	return out
}

func TestSortRecords_Ordinal(t *testing.T) {
	got := SortRecords(records("Bahamas", "aruba", "Aruba", "Åland Islands", "Zambia"))
	// Upper case sorts before lower case and non-ASCII after ASCII.
	want := records("Aruba", "Bahamas", "Zambia", "aruba", "Åland Islands")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestSortRecords_DoesNotMutateInput(t *testing.T) {
	in := records("Chad", "Benin", "Angola")
	_ = SortRecords(in)

	if diff := cmp.Diff(records("Chad", "Benin", "Angola"), in); diff != "" {
		t.Errorf("input was mutated (-want +got):\n%s", diff)
	}
}

func TestSortRecords_Idempotent(t *testing.T) {
	once := SortRecords(records("Niger", "Nigeria", "Mali", "Malta", "Chad"))
	twice := SortRecords(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("sorting a sorted sequence changed it (-once +twice):\n%s", diff)
	}
}

func TestSortRecords_PermutationInvariant(t *testing.T) {
	permutations := [][]model.CountryRecord{
		records("Cote d'Ivoire", "Aruba", "Bahamas"),
		records("Bahamas", "Cote d'Ivoire", "Aruba"),
		records("Aruba", "Bahamas", "Cote d'Ivoire"),
		records("Bahamas", "Aruba", "Cote d'Ivoire"),
	}
	want := records("Aruba", "Bahamas", "Cote d'Ivoire")

	for i, p := range permutations {
		if diff := cmp.Diff(want, SortRecords(p)); diff != "" {
			t.Errorf("permutation %d sorted differently (-want +got):\n%s", i, diff)
		}
	}
}

func TestSortRecords_Empty(t *testing.T) {
	if got := SortRecords(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
