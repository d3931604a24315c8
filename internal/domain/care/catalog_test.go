package care

import "testing"

func TestCatalog_NameAndActive(t *testing.T) {
	cat := NewCatalog([]CareType{
		{ID: "v2", Kind: KindVaccination, Name: "typhus", Active: true},
		{ID: "v1", Kind: KindVaccination, Name: "Coryza", Active: false},
		{ID: "d1", Kind: KindDeworming, Name: "Milbemax", Active: true},
	})

	if got := cat.Name("v1"); got != "Coryza" {
		t.Fatalf("expected Coryza, got %q", got)
	}
	if got := cat.Name("gone"); got != "gone" {
		t.Fatalf("unknown id should fall back to id, got %q", got)
	}

	all := cat.All(KindVaccination)
	if len(all) != 2 || all[0].ID != "v1" || all[1].ID != "v2" {
		t.Fatalf("unexpected order: %+v", all)
	}
	active := cat.Active(KindVaccination)
	if len(active) != 1 || active[0].ID != "v2" {
		t.Fatalf("expected only v2 active, got %+v", active)
	}
	// Active no debe alterar el resultado de All.
	if len(cat.All(KindVaccination)) != 2 {
		t.Fatalf("All changed after Active")
	}
	if len(cat.All("")) != 3 {
		t.Fatalf("expected 3 types overall")
	}
}

func TestParseSeed_Invalid(t *testing.T) {
	if _, err := ParseSeed([]byte("vaccination: [unclosed")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
