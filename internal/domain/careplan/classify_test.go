package careplan

import "testing"

func TestClassifyEntryReason(t *testing.T) {
	cases := []struct {
		in   string
		want EntryCategory
		ok   bool
	}{
		{"Abandon", EntryAbandonment, true},
		{"ABANDONNÉ par son maître", EntryAbandonment, true},
		{"Retour après adoption", EntryReturned, true},
		{"trouvé sur un parking", EntryFound, true},
		{"Trouve\u0301e dans la rue", EntryFound, true},
		{"inconnu", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ClassifyEntryReason(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ClassifyEntryReason(%q) = %q,%v; want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestClassifyExitReason_Priority(t *testing.T) {
	cases := []struct {
		in   string
		want ExitCategory
		ok   bool
	}{
		{"Placé", ExitPlaced, true},
		{"Rendu au propriétaire", ExitOwner, true},
		{"Décédé", ExitDeceased, true},
		{"DECES", ExitDeceased, true},
		{"échappé", ExitEscaped, true},
		{"Echappée par la fenêtre", ExitEscaped, true},
		{"Transféré", ExitTransferred, true},
		{"transfer to partner", ExitTransferred, true},
		// acentos descompuestos (NFD)
		{"de\u0301ce\u0300s", ExitDeceased, true},
		{"E\u0301chappe\u0301", ExitEscaped, true},
		{"transfe\u0301re\u0301", ExitTransferred, true},
		// la primera regla que coincide gana
		{"placé chez le propriétaire", ExitPlaced, true},
		{"autre", "", false},
	}
	for _, tc := range cases {
		got, ok := ClassifyExitReason(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ClassifyExitReason(%q) = %q,%v; want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
