package domain

import (
	"strconv"
	"strings"
)

// Number tolera campos numéricos que las fuentes entregan como número JSON,
// string o columna CSV. Se guarda crudo y se parsea recién al usarlo.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = ""
		return nil
	}
	s = strings.Trim(s, `"`)
	*n = Number(s)
	return nil
}

// Float64 devuelve el valor numérico, o error si el campo falta o no parsea.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
}

// NumberFromFloat convierte un float de la base de datos al formato crudo.
func NumberFromFloat(f float64) Number {
	return Number(strconv.FormatFloat(f, 'f', -1, 64))
}

// OwnedBottle es una entrada de la colección (barra) de un usuario.
// El proof sigue la convención ABV*2.
type OwnedBottle struct {
	Name        string `json:"name"`
	Proof       Number `json:"proof"`
	AverageMSRP Number `json:"average_msrp"`
	Brand       string `json:"brand"`
	Spirit      string `json:"spirit"`
}

// CatalogBottle es una entrada del catálogo compartido de botellas.
type CatalogBottle struct {
	Name       string `json:"name"`
	ABV        Number `json:"abv"`
	SpiritType string `json:"spirit_type"`
	ShelfPrice Number `json:"shelf_price"`
	Ranking    Number `json:"ranking,omitempty"`
}
