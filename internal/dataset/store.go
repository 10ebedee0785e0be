package dataset

import (
	"context"

	"github.com/shaiso/iris-api/internal/domain"
	"github.com/shaiso/iris-api/internal/query"
	"github.com/shaiso/iris-api/internal/repo"
)

// Store — хранилище записей в памяти процесса.
//
// Используется, когда реляционная БД не сконфигурирована, а также
// в тестах. Записи после создания Store неизменяемы, поэтому чтение
// безопасно из любого числа горутин.
type Store struct {
	flowers []domain.Flower
	species []string
	byID    map[int]domain.Flower
}

// NewStore создаёт Store над загруженными записями.
func NewStore(flowers []domain.Flower) *Store {
	byID := make(map[int]domain.Flower, len(flowers))
	for _, fl := range flowers {
		byID[fl.ID] = fl
	}
	return &Store{
		flowers: flowers,
		species: query.Species(flowers),
		byID:    byID,
	}
}

// List возвращает все записи в порядке вставки.
// Каждый вызов отдаёт новый slice: вызывающий может сортировать результат.
func (s *Store) List(_ context.Context) ([]domain.Flower, error) {
	out := make([]domain.Flower, len(s.flowers))
	copy(out, s.flowers)
	return out, nil
}

// GetByID возвращает запись по ID или repo.ErrNotFound.
func (s *Store) GetByID(_ context.Context, id int) (*domain.Flower, error) {
	fl, ok := s.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &fl, nil
}

// ListSpecies возвращает различные видовые метки в порядке первого появления.
func (s *Store) ListSpecies(_ context.Context) ([]string, error) {
	out := make([]string, len(s.species))
	copy(out, s.species)
	return out, nil
}
