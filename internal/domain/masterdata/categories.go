// Package masterdata contiene servicios de dominio de la ficha maestra de
// productos: vocabulario de categorías y formato de ficha técnica.
package masterdata

import (
	"sort"

	"github.com/jhoicas/Planta-core/internal/domain/entity"
)

// seedCategories conjunto semilla del vocabulario de categorías de checklist.
var seedCategories = []string{"Visual", "Dimensional", "Functional", "Packaging"}

// AvailableCategories calcula el vocabulario de categorías como unión de:
// el conjunto semilla, las categorías de los checklists de todos los productos
// confirmados, y las de la sesión de edición en curso. excludeItemID excluye
// la fila que se está tipeando, para que un valor a medio escribir no aparezca
// como opción seleccionable. El resultado viene ordenado.
func AvailableCategories(products []entity.ProductDefinition, session *entity.ProductDefinition, excludeItemID string) []string {
	set := make(map[string]struct{}, len(seedCategories))
	for _, c := range seedCategories {
		set[c] = struct{}{}
	}
	for _, p := range products {
		for _, c := range p.Checklist {
			if c.Category != "" {
				set[c.Category] = struct{}{}
			}
		}
	}
	if session != nil {
		for _, c := range session.Checklist {
			if c.Category != "" && c.ID != excludeItemID {
				set[c.Category] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
