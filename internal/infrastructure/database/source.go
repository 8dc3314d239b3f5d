package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"subloc/internal/ports/output"
)

var _ output.CatalogSource = (*CatalogSource)(nil)

// CatalogSource loads catalog text from the catalogs table. It lets a
// live-ops pipeline push updated translations without shipping new assets;
// the engine still parses and validates at load time like any other source.
type CatalogSource struct {
	pool *pgxpool.Pool
}

func NewCatalogSource(pool *pgxpool.Pool) *CatalogSource {
	return &CatalogSource{pool: pool}
}

// Load returns every stored locale's raw catalog source.
func (s *CatalogSource) Load(ctx context.Context) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT locale, source FROM catalogs`)
	if err != nil {
		return nil, fmt.Errorf("query catalogs: %w", err)
	}
	defer rows.Close()

	sources := make(map[string]string)
	for rows.Next() {
		var locale, source string
		if err := rows.Scan(&locale, &source); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		sources[locale] = source
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalogs: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no catalogs stored")
	}
	return sources, nil
}

// LoadLocale returns one locale's raw catalog source, for targeted reloads.
func (s *CatalogSource) LoadLocale(ctx context.Context, locale string) (string, error) {
	var source string
	err := s.pool.QueryRow(ctx,
		`SELECT source FROM catalogs WHERE locale = $1`, locale,
	).Scan(&source)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("no catalog stored for locale %q", locale)
		}
		return "", fmt.Errorf("query catalog %q: %w", locale, err)
	}
	return source, nil
}
