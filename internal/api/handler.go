package api

import (
	"context"
	"log/slog"

	"github.com/shaiso/iris-api/internal/domain"
)

// FlowerStore — источник записей датасета.
// Реализуется repo.FlowerRepo (PostgreSQL) и dataset.Store (в памяти).
type FlowerStore interface {
	// List возвращает все записи в порядке вставки.
	List(ctx context.Context) ([]domain.Flower, error)

	// GetByID возвращает запись по ID или repo.ErrNotFound.
	GetByID(ctx context.Context, id int) (*domain.Flower, error)
}

// SpeciesStore — источник каталога видов.
type SpeciesStore interface {
	// ListSpecies возвращает различные видовые метки в порядке первого появления.
	ListSpecies(ctx context.Context) ([]string, error)
}

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	flowers FlowerStore
	species SpeciesStore
	logger  *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	Flowers FlowerStore
	Species SpeciesStore
	Logger  *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		flowers: cfg.Flowers,
		species: cfg.Species,
		logger:  cfg.Logger,
	}
}
