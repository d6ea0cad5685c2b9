package catalog

import (
	"sort"
	"strings"

	"liquor-bartender/internal/domain"
)

// Pesos del prefiltro y sus umbrales.
const (
	weightABVBand     = 2
	weightSpiritMatch = 3
	weightShelfPrice  = 1

	abvBand      = 5.0
	priceCeiling = 100.0

	DefaultMaxCandidates = 20
)

type scoredCandidate struct {
	bottle domain.CatalogBottle
	score  int
}

// ScoreBottle puntúa una botella contra el perfil objetivo. Devuelve ok=false
// si el ABV o el precio no parsean, o si falta el tipo de espirituoso: esas
// botellas se descartan por completo, no se puntúan en cero.
func ScoreBottle(b domain.CatalogBottle, favoriteSpirit string, targetABV float64) (int, bool) {
	abv, err := b.ABV.Float64()
	if err != nil {
		return 0, false
	}
	price, err := b.ShelfPrice.Float64()
	if err != nil {
		return 0, false
	}
	if b.SpiritType == "" {
		return 0, false
	}

	score := 0
	if targetABV-abvBand <= abv && abv <= targetABV+abvBand {
		score += weightABVBand
	}
	if strings.EqualFold(favoriteSpirit, b.SpiritType) {
		score += weightSpiritMatch
	}
	if price <= priceCeiling {
		score += weightShelfPrice
	}
	return score, true
}

// FilterCandidates puntúa todo el catálogo y devuelve los mejores candidatos,
// de mayor a menor puntaje. El orden relativo del catálogo se conserva en los
// empates (orden estable, sin clave secundaria).
func FilterCandidates(bottles []domain.CatalogBottle, favoriteSpirit string, targetABV float64, maxCandidates int) []domain.CatalogBottle {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}

	scored := make([]scoredCandidate, 0, len(bottles))
	for _, b := range bottles {
		if s, ok := ScoreBottle(b, favoriteSpirit, targetABV); ok {
			scored = append(scored, scoredCandidate{bottle: b, score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > maxCandidates {
		scored = scored[:maxCandidates]
	}
	out := make([]domain.CatalogBottle, len(scored))
	for i, sc := range scored {
		out[i] = sc.bottle
	}
	return out
}
