package profile

import (
	"math"
	"strings"

	"liquor-bartender/internal/domain"
)

// Pesos de atribución: coincidencia de espirituoso y cercanía de ABV.
const (
	influenceSpiritWeight = 3
	influenceABVWeight    = 2
	influenceABVBand      = 5.0
)

// AttributeInfluence determina qué usuario explica mejor la botella elegida.
// profiles y userIDs se corresponden posicionalmente; el primero con el
// puntaje estrictamente mayor gana, así que los empates los resuelve el orden
// de entrada. Es determinista para entradas fijas.
func AttributeInfluence(bottle domain.CatalogBottle, profiles []domain.TasteProfile, userIDs []string) string {
	if len(userIDs) == 0 || len(profiles) != len(userIDs) {
		return ""
	}

	abv, abvErr := bottle.ABV.Float64()

	best := -1
	winner := userIDs[0]
	for i, p := range profiles {
		score := 0
		if len(p.FavoriteSpirits) > 0 && strings.EqualFold(p.FavoriteSpirits[0], bottle.SpiritType) {
			score += influenceSpiritWeight
		}
		if abvErr == nil && math.Abs(abv-p.AvgProof/2) <= influenceABVBand {
			score += influenceABVWeight
		}
		if score > best {
			best = score
			winner = userIDs[i]
		}
	}
	return winner
}
