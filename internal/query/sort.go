package query

import (
	"sort"

	"github.com/shaiso/iris-api/internal/domain"
)

// Поля и порядок сортировки списка записей.
const (
	SortBySpecies = "species"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Sort сортирует записи на месте. sortBy — любой числовой атрибут или
// "species"; order — "asc" или "desc" (пустой order означает "asc").
// Сортировка стабильная: записи с равными ключами сохраняют исходный порядок.
func Sort(records []domain.Flower, sortBy, order string) error {
	if sortBy == "" {
		return nil
	}

	var key func(domain.Flower) float64
	bySpecies := sortBy == SortBySpecies
	if !bySpecies {
		attr, ok := domain.ParseAttribute(sortBy)
		if !ok {
			return NewError(sortBy, "unknown sort field", ErrInvalidFilter)
		}
		key = attr.Value
	}

	desc := false
	switch order {
	case "", SortAsc:
	case SortDesc:
		desc = true
	default:
		return NewError("", "sort order must be 'asc' or 'desc'", ErrInvalidFilter)
	}

	sort.SliceStable(records, func(i, j int) bool {
		var less bool
		if bySpecies {
			less = records[i].Species < records[j].Species
		} else {
			less = key(records[i]) < key(records[j])
		}
		if desc {
			return !less && !equalKey(records[i], records[j], bySpecies, key)
		}
		return less
	})
	return nil
}

func equalKey(a, b domain.Flower, bySpecies bool, key func(domain.Flower) float64) bool {
	if bySpecies {
		return a.Species == b.Species
	}
	return key(a) == key(b)
}
