package catalog

import (
	"context"

	"liquor-bartender/internal/domain"
)

// Source entrega una instantánea de solo lectura del catálogo de botellas.
type Source interface {
	Load(ctx context.Context) ([]domain.CatalogBottle, error)
}

// Fallback es el catálogo fijo que se usa cuando ninguna fuente responde.
func Fallback() []domain.CatalogBottle {
	return []domain.CatalogBottle{
		{Name: "Jameson", ABV: "40", SpiritType: "whiskey", ShelfPrice: "30"},
		{Name: "Maker's Mark", ABV: "45", SpiritType: "whiskey", ShelfPrice: "35"},
		{Name: "Bulleit Bourbon", ABV: "45", SpiritType: "whiskey", ShelfPrice: "40"},
		{Name: "Woodford Reserve", ABV: "45", SpiritType: "whiskey", ShelfPrice: "50"},
		{Name: "Knob Creek", ABV: "50", SpiritType: "whiskey", ShelfPrice: "55"},
		{Name: "Grey Goose", ABV: "40", SpiritType: "vodka", ShelfPrice: "45"},
	}
}
