package profile

import "liquor-bartender/internal/domain"

// Defaults agrupa la política de degradación: los valores que reemplazan a
// una colección vacía o malformada. Se fijan una vez al arranque.
type Defaults struct {
	Spirit string
	Brand  string
	Proof  float64
	Price  float64
}

// Profile materializa el perfil por defecto completo, campo por campo.
func (d Defaults) Profile() domain.TasteProfile {
	return domain.TasteProfile{
		AvgProof:        d.Proof,
		ProofRange:      [2]float64{d.Proof, d.Proof},
		PriceRange:      [2]float64{d.Price, d.Price},
		Spirits:         []string{d.Spirit},
		FavoriteSpirits: []string{d.Spirit},
		FavoriteBrands:  []string{d.Brand},
	}
}

// Bar devuelve la barra de respaldo de una sola botella que se usa cuando la
// fuente remota de colecciones no responde.
func (d Defaults) Bar() []domain.OwnedBottle {
	return []domain.OwnedBottle{
		{
			Name:        d.Brand,
			Proof:       domain.NumberFromFloat(d.Proof),
			AverageMSRP: domain.NumberFromFloat(d.Price),
			Brand:       d.Brand,
			Spirit:      d.Spirit,
		},
	}
}
