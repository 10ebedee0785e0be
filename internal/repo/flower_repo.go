package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shaiso/iris-api/internal/domain"
)

// FlowerRepo — репозиторий записей датасета в PostgreSQL.
//
// Таблица flowers хранит только базовые измерения и вид;
// производные атрибуты вычисляются при чтении. Датасет
// неизменяем: кроме начального посева, записи не пишутся.
type FlowerRepo struct {
	pool *pgxpool.Pool
}

// NewFlowerRepo создаёт новый FlowerRepo.
func NewFlowerRepo(pool *pgxpool.Pool) *FlowerRepo {
	return &FlowerRepo{pool: pool}
}

// EnsureSchema создаёт таблицу flowers, если её нет.
func (r *FlowerRepo) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS flowers (
			id            INTEGER PRIMARY KEY,
			sepal_length  DOUBLE PRECISION NOT NULL CHECK (sepal_length > 0),
			sepal_width   DOUBLE PRECISION NOT NULL CHECK (sepal_width > 0),
			petal_length  DOUBLE PRECISION NOT NULL CHECK (petal_length > 0),
			petal_width   DOUBLE PRECISION NOT NULL CHECK (petal_width > 0),
			species       TEXT NOT NULL
		)
	`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SeedIfEmpty засевает таблицу эталонным датасетом, если она пуста.
func (r *FlowerRepo) SeedIfEmpty(ctx context.Context, flowers []domain.Flower) error {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM flowers`).Scan(&count); err != nil {
		return fmt.Errorf("count flowers: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := make([][]any, len(flowers))
	for i, fl := range flowers {
		rows[i] = []any{fl.ID, fl.SepalLength, fl.SepalWidth, fl.PetalLength, fl.PetalWidth, fl.Species}
	}

	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"flowers"},
		[]string{"id", "sepal_length", "sepal_width", "petal_length", "petal_width", "species"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("seed flowers: %w", err)
	}
	return nil
}

// List возвращает все записи в порядке вставки (полный скан таблицы).
// Фильтрация и статистика выполняются поверх результата в internal/query.
func (r *FlowerRepo) List(ctx context.Context) ([]domain.Flower, error) {
	query := `
		SELECT id, sepal_length, sepal_width, petal_length, petal_width, species
		FROM flowers
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list flowers: %w", err)
	}
	defer rows.Close()

	var flowers []domain.Flower
	for rows.Next() {
		var fl domain.Flower
		if err := rows.Scan(
			&fl.ID,
			&fl.SepalLength,
			&fl.SepalWidth,
			&fl.PetalLength,
			&fl.PetalWidth,
			&fl.Species,
		); err != nil {
			return nil, fmt.Errorf("scan flower: %w", err)
		}
		fl.ComputeDerived()
		flowers = append(flowers, fl)
	}
	return flowers, rows.Err()
}

// GetByID возвращает запись по ID.
func (r *FlowerRepo) GetByID(ctx context.Context, id int) (*domain.Flower, error) {
	query := `
		SELECT id, sepal_length, sepal_width, petal_length, petal_width, species
		FROM flowers
		WHERE id = $1
	`
	var fl domain.Flower
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&fl.ID,
		&fl.SepalLength,
		&fl.SepalWidth,
		&fl.PetalLength,
		&fl.PetalWidth,
		&fl.Species,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get flower by id: %w", err)
	}
	fl.ComputeDerived()
	return &fl, nil
}
