package animals

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContainsFold: búsqueda de nombre case-insensitive con reglas Unicode (Éclair ~ éclair).
func ContainsFold(s, sub string) bool {
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return true
	}
	// Un Caser no se comparte entre goroutines.
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(sub))
}

// DisplayName normaliza nombres cargados en minúsculas ("minou" -> "Minou").
func DisplayName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	if strings.ToLower(name) == name {
		return cases.Title(language.French).String(name)
	}
	return name
}
