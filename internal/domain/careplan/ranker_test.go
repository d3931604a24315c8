package careplan

import (
	"testing"

	"cat-shelter-admin/internal/domain/care"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	cat := care.NewCatalog([]care.CareType{
		{ID: "typhus", Kind: care.KindVaccination, Name: "Typhus", Active: true},
		{ID: "coryza", Kind: care.KindVaccination, Name: "Coryza", Active: true},
		{ID: "old", Kind: care.KindVaccination, Name: "Ancien", Active: false},
		{ID: "milbemax", Kind: care.KindDeworming, Name: "Milbemax", Active: true},
	})
	items := []DueItem{
		{Kind: care.KindVaccination, TypeID: "typhus", Status: StatusLate},
		{Kind: care.KindVaccination, TypeID: "typhus", Status: StatusSoon},
		{Kind: care.KindVaccination, TypeID: "typhus", Status: StatusLate},
		{Kind: care.KindVaccination, TypeID: "old", Status: StatusSoon},
		{Kind: care.KindDeworming, Status: StatusLate},
	}

	want := []KindCounter{
		{Kind: care.KindVaccination, TypeID: "coryza", Label: "Coryza"},
		{Kind: care.KindVaccination, TypeID: "typhus", Label: "Typhus", Late: 2, Soon: 1},
		{Kind: care.KindDeworming, Label: "deworming", Late: 1},
		{Kind: care.KindVaccination, TypeID: "old", Label: "Ancien", Soon: 1},
	}
	if diff := cmp.Diff(want, Summarize(items, cat)); diff != "" {
		t.Fatalf("unexpected counters (-want +got):\n%s", diff)
	}
}

func TestSummarize_EmptyCatalog(t *testing.T) {
	got := Summarize(nil, care.Catalog{})
	if len(got) != 1 || got[0].Kind != care.KindDeworming || got[0].Late != 0 {
		t.Fatalf("expected a single empty deworming counter, got %+v", got)
	}
}
