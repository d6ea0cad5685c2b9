package domain

// RecommendedBottle es una recomendación final con su justificación en prosa.
type RecommendedBottle struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// RecommendationSet es el resultado estructurado de la etapa generativa.
type RecommendationSet struct {
	Bottles []RecommendedBottle `json:"bottles"`
}

// InfluenceRecord atribuye una botella recomendada al miembro del grupo cuyo
// perfil mejor la explica. InfluencedBy queda vacío si la botella no se
// encontró en el catálogo.
type InfluenceRecord struct {
	Bottle       string `json:"bottle"`
	InfluencedBy string `json:"influenced_by"`
}

// RoomRecommendation es la respuesta del flujo grupal.
type RoomRecommendation struct {
	RoomID       string              `json:"room_id"`
	Bottles      []RecommendedBottle `json:"bottles"`
	InfluencedBy []InfluenceRecord   `json:"influenced_by"`
}
