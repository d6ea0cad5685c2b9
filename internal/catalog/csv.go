package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"liquor-bartender/internal/domain"
)

// CSVSource carga el catálogo desde un CSV con encabezados
// name, abv, spirit_type, shelf_price y opcionalmente ranking.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Load(ctx context.Context) ([]domain.CatalogBottle, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"name", "abv", "spirit_type", "shelf_price"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("catalog csv missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var bottles []domain.CatalogBottle
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		bottles = append(bottles, domain.CatalogBottle{
			Name:       field(row, "name"),
			ABV:        domain.Number(field(row, "abv")),
			SpiritType: field(row, "spirit_type"),
			ShelfPrice: domain.Number(field(row, "shelf_price")),
			Ranking:    domain.Number(field(row, "ranking")),
		})
	}
	return bottles, nil
}
