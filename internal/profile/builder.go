package profile

import (
	"sort"

	"go.uber.org/zap"

	"liquor-bartender/internal/domain"
)

// Builder construye un TasteProfile a partir de la colección de un usuario.
// Es una función pura de su entrada: no guarda estado entre llamadas.
type Builder struct {
	defaults Defaults
	logger   *zap.Logger
}

func NewBuilder(defaults Defaults, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{defaults: defaults, logger: logger}
}

// Build deriva el perfil de gusto de la barra. Si la colección está vacía o
// alguna entrada viene malformada (proof/precio no numérico, marca o
// espirituoso ausente) se devuelve el perfil por defecto completo: la
// política es todo-o-nada, nunca un perfil parcial.
func (b *Builder) Build(bar []domain.OwnedBottle) domain.TasteProfile {
	if len(bar) == 0 {
		b.logger.Debug("empty bar, using default profile")
		return b.defaults.Profile()
	}

	proofs := make([]float64, 0, len(bar))
	prices := make([]float64, 0, len(bar))
	brands := make([]string, 0, len(bar))
	spirits := make([]string, 0, len(bar))

	for _, bottle := range bar {
		proof, perr := bottle.Proof.Float64()
		price, merr := bottle.AverageMSRP.Float64()
		if perr != nil || merr != nil || bottle.Brand == "" || bottle.Spirit == "" {
			b.logger.Warn("malformed bar entry, using default profile",
				zap.String("bottle", bottle.Name))
			return b.defaults.Profile()
		}
		proofs = append(proofs, proof)
		prices = append(prices, price)
		brands = append(brands, bottle.Brand)
		spirits = append(spirits, bottle.Spirit)
	}

	minProof, maxProof, sumProof := proofs[0], proofs[0], 0.0
	for _, p := range proofs {
		if p < minProof {
			minProof = p
		}
		if p > maxProof {
			maxProof = p
		}
		sumProof += p
	}

	minPrice, maxPrice := prices[0], prices[0]
	for _, p := range prices {
		if p < minPrice {
			minPrice = p
		}
		if p > maxPrice {
			maxPrice = p
		}
	}

	favoriteSpirits := rankByFrequency(spirits)
	if len(favoriteSpirits) == 0 {
		favoriteSpirits = []string{b.defaults.Spirit}
	}
	favoriteBrands := rankByFrequency(brands)
	if len(favoriteBrands) == 0 {
		favoriteBrands = []string{b.defaults.Brand}
	}

	return domain.TasteProfile{
		AvgProof:        sumProof / float64(len(proofs)),
		ProofRange:      [2]float64{minProof, maxProof},
		PriceRange:      [2]float64{minPrice, maxPrice},
		Spirits:         uniqueInOrder(spirits),
		FavoriteSpirits: favoriteSpirits,
		FavoriteBrands:  favoriteBrands,
	}
}

// rankByFrequency ordena los valores únicos por frecuencia descendente.
// Los empates conservan el orden de primera aparición.
func rankByFrequency(values []string) []string {
	counts := make(map[string]int, len(values))
	ranked := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			ranked = append(ranked, v)
		}
		counts[v]++
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}

func uniqueInOrder(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
