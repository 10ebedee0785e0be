package query

import (
	"math"
	"sort"

	"github.com/shaiso/iris-api/internal/domain"
)

// AttributeSummary — сводная статистика по одному числовому атрибуту.
type AttributeSummary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
}

// DatasetSummary — сводка по всему датасету: распределение записей
// по видам плюс статистика по каждому числовому атрибуту.
type DatasetSummary struct {
	TotalRecords        int                         `json:"total_records"`
	SpeciesDistribution map[string]int              `json:"species_distribution"`
	Measurements        map[string]AttributeSummary `json:"measurements"`
}

// SpeciesSummary — сводка по одному виду.
type SpeciesSummary struct {
	Species      string                      `json:"species"`
	TotalRecords int                         `json:"total_records"`
	Measurements map[string]AttributeSummary `json:"measurements"`
}

// Species возвращает различные видовые метки в порядке первого появления.
func Species(records []domain.Flower) []string {
	seen := make(map[string]bool)
	var out []string
	for _, fl := range records {
		if !seen[fl.Species] {
			seen[fl.Species] = true
			out = append(out, fl.Species)
		}
	}
	return out
}

// Summarize строит сводку по всему датасету.
func Summarize(records []domain.Flower) DatasetSummary {
	dist := make(map[string]int)
	for _, fl := range records {
		dist[fl.Species]++
	}
	return DatasetSummary{
		TotalRecords:        len(records),
		SpeciesDistribution: dist,
		Measurements:        summarizeAll(records),
	}
}

// SummarizeSpecies строит сводку по одному виду.
// Возвращает false, если записей этого вида в датасете нет.
func SummarizeSpecies(records []domain.Flower, species string) (SpeciesSummary, bool) {
	var subset []domain.Flower
	for _, fl := range records {
		if fl.Species == species {
			subset = append(subset, fl)
		}
	}
	if len(subset) == 0 {
		return SpeciesSummary{}, false
	}
	return SpeciesSummary{
		Species:      species,
		TotalRecords: len(subset),
		Measurements: summarizeAll(subset),
	}, true
}

func summarizeAll(records []domain.Flower) map[string]AttributeSummary {
	out := make(map[string]AttributeSummary, len(domain.Attributes()))
	if len(records) == 0 {
		return out
	}
	for _, attr := range domain.Attributes() {
		out[string(attr)] = summarizeAttr(records, attr)
	}
	return out
}

// summarizeAttr вычисляет сводку по одному атрибуту непустого набора записей.
// Std — выборочное стандартное отклонение (делитель n-1); для единственной
// записи std равен нулю.
func summarizeAttr(records []domain.Flower, attr domain.Attribute) AttributeSummary {
	values := make([]float64, len(records))
	for i, fl := range records {
		values[i] = attr.Value(fl)
	}
	sort.Float64s(values)

	m := mean(values)
	var std float64
	if n := len(values); n > 1 {
		var sumsq float64
		for _, v := range values {
			d := v - m
			sumsq += d * d
		}
		std = math.Sqrt(sumsq / float64(n-1))
	}

	return AttributeSummary{
		Min:    values[0],
		Max:    values[len(values)-1],
		Mean:   m,
		Median: median(values),
		Std:    std,
	}
}
