package careplan

import "cat-shelter-admin/internal/domain/care"

// Summarize agrupa los DueItem en contadores late/soon: uno por tipo de vacuna
// y uno para desparasitación. Las etiquetas salen del catálogo recibido; los
// tipos inactivos siguen contando si tienen recalls pendientes.
func Summarize(items []DueItem, catalog care.Catalog) []KindCounter {
	counters := make([]KindCounter, 0)
	index := make(map[string]int)

	add := func(kind care.Kind, typeID string) int {
		key := string(kind) + "/" + typeID
		if i, ok := index[key]; ok {
			return i
		}
		label := string(kind)
		if typeID != "" {
			label = catalog.Name(typeID)
		}
		counters = append(counters, KindCounter{Kind: kind, TypeID: typeID, Label: label})
		index[key] = len(counters) - 1
		return len(counters) - 1
	}

	// Vacunas activas siempre visibles (con cero), luego desparasitación.
	for _, t := range catalog.Active(care.KindVaccination) {
		add(care.KindVaccination, t.ID)
	}
	add(care.KindDeworming, "")

	for _, it := range items {
		typeID := it.TypeID
		if it.Kind != care.KindVaccination {
			typeID = ""
		}
		i := add(it.Kind, typeID)
		switch it.Status {
		case StatusLate:
			counters[i].Late++
		case StatusSoon:
			counters[i].Soon++
		}
	}
	return counters
}
