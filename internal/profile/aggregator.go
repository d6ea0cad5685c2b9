package profile

import (
	"errors"

	"liquor-bartender/internal/domain"
)

// ErrEmptyProfiles señala una agregación sobre cero perfiles: está indefinida
// y nunca degrada en silencio.
var ErrEmptyProfiles = errors.New("no profiles provided for aggregation")

// Aggregator combina varios perfiles individuales en un perfil de consenso.
type Aggregator struct {
	defaults Defaults
}

func NewAggregator(defaults Defaults) *Aggregator {
	return &Aggregator{defaults: defaults}
}

// Aggregate calcula el consenso del grupo:
//   - espirituoso ganador: el favorito principal de cada perfil, contado
//     sobre todo el grupo; los empates los gana el primero en orden de
//     entrada (comparación estricta sobre el orden de primera aparición)
//   - avg_proof: promedio de los ABV individuales (proof/2) reconvertido a
//     escala proof; el ida y vuelta /2*2 se conserva porque los consumidores
//     vuelven a dividir por 2
//   - price_range: mínimo de mínimos y máximo de máximos
func (a *Aggregator) Aggregate(profiles []domain.TasteProfile) (domain.GroupProfile, error) {
	if len(profiles) == 0 {
		return domain.GroupProfile{}, ErrEmptyProfiles
	}

	counts := make(map[string]int, len(profiles))
	order := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if len(p.FavoriteSpirits) == 0 {
			continue
		}
		top := p.FavoriteSpirits[0]
		if counts[top] == 0 {
			order = append(order, top)
		}
		counts[top]++
	}

	winner := a.defaults.Spirit
	best := 0
	for _, spirit := range order {
		if counts[spirit] > best {
			best = counts[spirit]
			winner = spirit
		}
	}

	sumABV := 0.0
	for _, p := range profiles {
		sumABV += p.AvgProof / 2
	}
	avgABV := sumABV / float64(len(profiles))

	minPrice, maxPrice := profiles[0].PriceRange[0], profiles[0].PriceRange[1]
	for _, p := range profiles[1:] {
		if p.PriceRange[0] < minPrice {
			minPrice = p.PriceRange[0]
		}
		if p.PriceRange[1] > maxPrice {
			maxPrice = p.PriceRange[1]
		}
	}

	return domain.GroupProfile{
		AvgProof:        avgABV * 2,
		PriceRange:      [2]float64{minPrice, maxPrice},
		FavoriteSpirits: []string{winner},
	}, nil
}
