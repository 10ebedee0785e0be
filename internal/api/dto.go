package api

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/shaiso/iris-api/internal/domain"
	"github.com/shaiso/iris-api/internal/query"
)

// FlowerResponse — запись датасета в ответе API.
type FlowerResponse struct {
	ID                      int     `json:"id"`
	SepalLength             float64 `json:"sepal_length"`
	SepalWidth              float64 `json:"sepal_width"`
	PetalLength             float64 `json:"petal_length"`
	PetalWidth              float64 `json:"petal_width"`
	SepalArea               float64 `json:"sepal_area"`
	PetalArea               float64 `json:"petal_area"`
	SepalToPetalAreaRatio   float64 `json:"sepal_to_petal_area_ratio"`
	SepalToPetalLengthRatio float64 `json:"sepal_to_petal_length_ratio"`
	SepalToPetalWidthRatio  float64 `json:"sepal_to_petal_width_ratio"`
	Species                 string  `json:"species"`
}

// FlowerFromDomain конвертирует domain.Flower в FlowerResponse.
func FlowerFromDomain(f domain.Flower) FlowerResponse {
	return FlowerResponse{
		ID:                      f.ID,
		SepalLength:             f.SepalLength,
		SepalWidth:              f.SepalWidth,
		PetalLength:             f.PetalLength,
		PetalWidth:              f.PetalWidth,
		SepalArea:               f.SepalArea,
		PetalArea:               f.PetalArea,
		SepalToPetalAreaRatio:   f.SepalToPetalAreaRatio,
		SepalToPetalLengthRatio: f.SepalToPetalLengthRatio,
		SepalToPetalWidthRatio:  f.SepalToPetalWidthRatio,
		Species:                 f.Species,
	}
}

// StatResponse — результат вычисления статистики.
type StatResponse struct {
	Attribute string   `json:"attribute"`
	Stat      string   `json:"stat"`
	P         *float64 `json:"p,omitempty"`
	Count     int      `json:"count"`
	Value     float64  `json:"value"`
}

// filterFromQuery собирает query.Filter из query-параметров запроса:
// species плюс min_<attr>/max_<attr> для любого числового атрибута.
//
// Значение границы, не являющееся числом, — InvalidFilter. Неизвестное
// имя атрибута отлавливается валидацией фильтра в движке. Ключи
// обходятся в отсортированном порядке, чтобы текст первой ошибки
// был детерминирован.
func filterFromQuery(values url.Values) (query.Filter, error) {
	f := query.Filter{Species: values.Get("species")}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ranges := make(map[string]*query.Range)
	order := []string{}
	bound := func(attr string) *query.Range {
		r, ok := ranges[attr]
		if !ok {
			r = &query.Range{Attribute: attr}
			ranges[attr] = r
			order = append(order, attr)
		}
		return r
	}

	for _, k := range keys {
		var attr string
		var isMin bool
		switch {
		case strings.HasPrefix(k, "min_"):
			attr, isMin = strings.TrimPrefix(k, "min_"), true
		case strings.HasPrefix(k, "max_"):
			attr = strings.TrimPrefix(k, "max_")
		default:
			continue
		}

		v, err := strconv.ParseFloat(values.Get(k), 64)
		if err != nil {
			return query.Filter{}, query.NewError(attr,
				"value for "+k+" must be a number", query.ErrInvalidFilter)
		}
		if isMin {
			bound(attr).Min = &v
		} else {
			bound(attr).Max = &v
		}
	}

	for _, attr := range order {
		f.Ranges = append(f.Ranges, *ranges[attr])
	}
	return f, nil
}

// limitFromQuery парсит опциональный параметр limit (0 — без лимита).
func limitFromQuery(values url.Values) (int, error) {
	s := values.Get("limit")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, query.NewError("", "limit must be a non-negative integer", query.ErrInvalidArgument)
	}
	return n, nil
}
