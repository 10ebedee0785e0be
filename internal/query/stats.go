package query

import (
	"math"
	"sort"

	"github.com/shaiso/iris-api/internal/domain"
)

// Stat — вид скалярной статистики.
type Stat string

const (
	StatMin      Stat = "min"
	StatMax      Stat = "max"
	StatMean     Stat = "mean"
	StatMedian   Stat = "median"
	StatQuantile Stat = "quantile"
)

// ParseStat парсит строку в Stat.
func ParseStat(s string) (Stat, error) {
	switch Stat(s) {
	case StatMin, StatMax, StatMean, StatMedian, StatQuantile:
		return Stat(s), nil
	default:
		return "", NewError("", "unknown stat '"+s+"'", ErrInvalidArgument)
	}
}

// Compute вычисляет статистику stat по атрибуту attribute над records.
// Для StatQuantile p задаёт уровень квантили и обязан лежать в [0, 1];
// для остальных видов p игнорируется.
//
// Результат детерминирован: одинаковые входы дают одинаковое значение.
func Compute(records []domain.Flower, attribute string, stat Stat, p float64) (float64, error) {
	attr, ok := domain.ParseAttribute(attribute)
	if !ok {
		return 0, NewError(attribute, "unknown or non-numeric attribute", ErrUnknownAttribute)
	}

	if stat == StatQuantile && (p < 0 || p > 1 || math.IsNaN(p)) {
		return 0, NewError("", "quantile p must be between 0 and 1", ErrInvalidArgument)
	}

	if len(records) == 0 {
		return 0, NewError(attribute, "no records match the filter", ErrEmptyPopulation)
	}

	values := make([]float64, len(records))
	for i, fl := range records {
		values[i] = attr.Value(fl)
	}

	switch stat {
	case StatMin:
		return minOf(values), nil
	case StatMax:
		return maxOf(values), nil
	case StatMean:
		return mean(values), nil
	case StatMedian:
		sort.Float64s(values)
		return median(values), nil
	case StatQuantile:
		sort.Float64s(values)
		return quantile(values, p), nil
	default:
		return 0, NewError("", "unknown stat '"+string(stat)+"'", ErrInvalidArgument)
	}
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median ожидает отсортированный непустой slice.
// Нечётное количество — средний элемент, чётное — среднее двух центральных.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// quantile ожидает отсортированный непустой slice и p в [0, 1].
// Линейная интерполяция между ближайшими рангами: rank = p*(n-1).
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	rank := p * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
