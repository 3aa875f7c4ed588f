package masterdata

import (
	"strings"

	"github.com/jhoicas/Planta-core/internal/domain/entity"
)

// SpecSheet arma el texto plano de la ficha técnica de un producto
// (la exportación "copiar especificaciones"): nombre, SKU, descripción y los
// campos personalizados con clave y valor presentes.
func SpecSheet(p entity.ProductDefinition) string {
	desc := p.Description
	if desc == "" {
		desc = "N/A"
	}
	lines := []string{
		"Product Name: " + p.Name,
		"SKU: " + p.SKU,
		"Description: " + desc,
		"",
	}
	wrote := false
	for _, f := range p.CustomFields {
		if f.Key != "" && f.Value != "" {
			lines = append(lines, f.Key+": "+f.Value)
			wrote = true
		}
	}
	if !wrote {
		lines = append(lines, "No custom specifications defined.")
	}
	return strings.Join(lines, "\n")
}
