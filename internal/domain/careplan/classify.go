package careplan

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Las reglas de clasificación de motivos viven solo en este archivo.

type EntryCategory string

const (
	EntryAbandonment EntryCategory = "abandonment"
	EntryReturned    EntryCategory = "returned"
	EntryFound       EntryCategory = "found"
)

type ExitCategory string

const (
	ExitPlaced      ExitCategory = "placed"
	ExitOwner       ExitCategory = "owner"
	ExitDeceased    ExitCategory = "deceased"
	ExitEscaped     ExitCategory = "escaped"
	ExitTransferred ExitCategory = "transferred"
)

type reasonRule[C any] struct {
	category C
	needles  []string
}

var entryRules = []reasonRule[EntryCategory]{
	{EntryAbandonment, []string{"abandon"}},
	{EntryReturned, []string{"retour"}},
	{EntryFound, []string{"trouv"}},
}

// Orden de prioridad: gana la primera que coincida.
var exitRules = []reasonRule[ExitCategory]{
	{ExitPlaced, []string{"plac"}},
	{ExitOwner, []string{"propri"}},
	{ExitDeceased, []string{"déc", "dec"}},
	{ExitEscaped, []string{"échapp", "echapp"}},
	{ExitTransferred, []string{"transfér", "transfer"}},
}

// ClassifyEntryReason: substring sin distinguir mayúsculas. ok=false si no hay categoría.
func ClassifyEntryReason(text string) (EntryCategory, bool) {
	return classify(text, entryRules)
}

func ClassifyExitReason(text string) (ExitCategory, bool) {
	return classify(text, exitRules)
}

func classify[C any](text string, rules []reasonRule[C]) (C, bool) {
	var zero C
	if strings.TrimSpace(text) == "" {
		return zero, false
	}
	// NFC primero: "e\u0301" tiene que coincidir con "é".
	// cases.Caser no es seguro entre goroutines: uno por llamada.
	lower := cases.Lower(language.French).String(norm.NFC.String(text))
	for _, r := range rules {
		for _, n := range r.needles {
			if strings.Contains(lower, n) {
				return r.category, true
			}
		}
	}
	return zero, false
}
