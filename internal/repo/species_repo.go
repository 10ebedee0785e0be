package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SpeciesRepo — репозиторий каталога видов.
type SpeciesRepo struct {
	pool *pgxpool.Pool
}

// NewSpeciesRepo создаёт новый SpeciesRepo.
func NewSpeciesRepo(pool *pgxpool.Pool) *SpeciesRepo {
	return &SpeciesRepo{pool: pool}
}

// ListSpecies возвращает различные видовые метки в порядке первого появления
// в датасете.
func (r *SpeciesRepo) ListSpecies(ctx context.Context) ([]string, error) {
	query := `
		SELECT species
		FROM flowers
		GROUP BY species
		ORDER BY MIN(id)
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	defer rows.Close()

	var species []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan species: %w", err)
		}
		species = append(species, s)
	}
	return species, rows.Err()
}
