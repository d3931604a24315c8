package animals

import (
	"testing"
	"time"
)

func TestAgeText(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		birth *time.Time
		want  string
	}{
		{"nil", nil, "—"},
		{"months only", day("2025-01-20"), "4 mois"},
		{"years and months", day("2022-03-15"), "3 ans, 3 mois"},
		{"day before birthday", day("2023-06-16"), "1 ans, 11 mois"},
		{"born today", day("2025-06-15"), "0 mois"},
	}
	for _, tc := range cases {
		if got := AgeText(tc.birth, today); got != tc.want {
			t.Errorf("%s: AgeText() = %q, want %q", tc.name, got, tc.want)
		}
	}
}
