package domain

// TasteProfile resume la colección de un usuario en rasgos numéricos y
// categóricos. Es inmutable una vez construido.
type TasteProfile struct {
	AvgProof        float64    `json:"avg_proof"`
	ProofRange      [2]float64 `json:"proof_range"`
	PriceRange      [2]float64 `json:"price_range"`
	Spirits         []string   `json:"spirits"`
	FavoriteSpirits []string   `json:"favorite_spirits"`
	FavoriteBrands  []string   `json:"favorite_brands"`
}

// GroupProfile es el perfil de consenso de una sala: un único espirituoso
// ganador, proof promedio (vía ABV) y la envolvente de precios del grupo.
type GroupProfile struct {
	AvgProof        float64    `json:"avg_proof"`
	PriceRange      [2]float64 `json:"price_range"`
	FavoriteSpirits []string   `json:"favorite_spirits"`
}
