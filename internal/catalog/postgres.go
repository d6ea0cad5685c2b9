package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"liquor-bartender/internal/domain"
)

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	// Configuración razonable para ambientes iniciales.
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// PgSource lee el catálogo desde la tabla bottles.
type PgSource struct {
	pool *pgxpool.Pool
}

func NewPgSource(pool *pgxpool.Pool) *PgSource {
	return &PgSource{pool: pool}
}

func (s *PgSource) Load(ctx context.Context) ([]domain.CatalogBottle, error) {
	const query = `
		SELECT name, abv, spirit_type, shelf_price, COALESCE(ranking, 0)
		FROM bottles
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query bottles: %w", err)
	}
	defer rows.Close()

	var bottles []domain.CatalogBottle
	for rows.Next() {
		var (
			name, spiritType    string
			abv, price, ranking float64
		)
		if err := rows.Scan(&name, &abv, &spiritType, &price, &ranking); err != nil {
			return nil, fmt.Errorf("scan bottle: %w", err)
		}
		bottles = append(bottles, domain.CatalogBottle{
			Name:       name,
			ABV:        domain.NumberFromFloat(abv),
			SpiritType: spiritType,
			ShelfPrice: domain.NumberFromFloat(price),
			Ranking:    domain.NumberFromFloat(ranking),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bottles: %w", err)
	}
	return bottles, nil
}
