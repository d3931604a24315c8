package care

import (
	"sort"
	"strings"
)

// Catalog es un valor inmutable con los tipos conocidos; se pasa explícitamente
// al motor de recordatorios en vez de vivir como estado global.
type Catalog struct {
	byID  map[string]CareType
	order []string
}

func NewCatalog(types []CareType) Catalog {
	c := Catalog{byID: make(map[string]CareType, len(types))}
	for _, t := range types {
		if t.ID == "" {
			continue
		}
		if _, dup := c.byID[t.ID]; !dup {
			c.order = append(c.order, t.ID)
		}
		c.byID[t.ID] = t
	}
	sort.SliceStable(c.order, func(i, j int) bool {
		a, b := c.byID[c.order[i]], c.byID[c.order[j]]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	return c
}

func (c Catalog) Lookup(id string) (CareType, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Name devuelve el nombre del tipo, o el id si no está en el catálogo.
func (c Catalog) Name(id string) string {
	if t, ok := c.byID[id]; ok {
		return t.Name
	}
	return id
}

// All devuelve todos los tipos (activos o no) de un kind; kind vacío = todos.
func (c Catalog) All(kind Kind) []CareType {
	out := make([]CareType, 0, len(c.order))
	for _, id := range c.order {
		t := c.byID[id]
		if kind != "" && t.Kind != kind {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Active devuelve solo los tipos ofrecidos para nuevos registros.
func (c Catalog) Active(kind Kind) []CareType {
	all := c.All(kind)
	out := all[:0]
	for _, t := range all {
		if t.Active {
			out = append(out, t)
		}
	}
	return out
}
