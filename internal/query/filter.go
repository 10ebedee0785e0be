package query

import (
	"fmt"

	"github.com/shaiso/iris-api/internal/domain"
)

// Range — диапазонное ограничение на числовой атрибут.
// Отсутствующая граница (nil) означает отсутствие ограничения с этой стороны.
type Range struct {
	Attribute string
	Min       *float64
	Max       *float64
}

// Filter — конъюнкция ограничений: опциональное точное совпадение
// по виду плюс ноль или более диапазонов по числовым атрибутам.
// Нулевой фильтр пропускает все записи.
type Filter struct {
	Species string
	Ranges  []Range
}

// IsZero возвращает true, если фильтр не содержит ограничений.
func (f Filter) IsZero() bool {
	return f.Species == "" && len(f.Ranges) == 0
}

// Validate проверяет корректность фильтра: каждый диапазон должен
// ссылаться на известный числовой атрибут, и min не может превышать max.
func (f Filter) Validate() error {
	for _, r := range f.Ranges {
		if _, ok := domain.ParseAttribute(r.Attribute); !ok {
			return NewError(r.Attribute, "unknown filter attribute", ErrInvalidFilter)
		}
		if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
			return NewError(r.Attribute,
				fmt.Sprintf("min %g exceeds max %g", *r.Min, *r.Max),
				ErrInvalidFilter)
		}
	}
	return nil
}

// Matches возвращает true, если запись удовлетворяет всем ограничениям.
// Фильтр должен быть предварительно провалидирован.
func (f Filter) Matches(fl domain.Flower) bool {
	if f.Species != "" && fl.Species != f.Species {
		return false
	}
	for _, r := range f.Ranges {
		attr, ok := domain.ParseAttribute(r.Attribute)
		if !ok {
			return false
		}
		v := attr.Value(fl)
		if r.Min != nil && v < *r.Min {
			return false
		}
		if r.Max != nil && v > *r.Max {
			return false
		}
	}
	return true
}

// Apply валидирует фильтр и возвращает записи, удовлетворяющие всем
// ограничениям, с сохранением исходного порядка. Всегда возвращает
// новый slice: вызывающий может безопасно сортировать результат.
func Apply(records []domain.Flower, f Filter) ([]domain.Flower, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	out := make([]domain.Flower, 0, len(records))
	for _, fl := range records {
		if f.Matches(fl) {
			out = append(out, fl)
		}
	}
	return out, nil
}
