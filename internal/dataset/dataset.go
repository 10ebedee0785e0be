package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	_ "embed"

	"github.com/shaiso/iris-api/internal/domain"
)

// irisCSV — эталонный датасет (150 записей), вшитый в бинарник.
//
//go:embed iris.csv
var irisCSV []byte

// ErrUnavailable — датасет не удалось загрузить или распарсить.
// Ошибка фатальна: процесс не должен обслуживать запросы.
var ErrUnavailable = errors.New("dataset unavailable")

// header — ожидаемый заголовок CSV.
var header = []string{"sepal_length", "sepal_width", "petal_length", "petal_width", "species"}

// Load читает вшитый эталонный датасет.
func Load() ([]domain.Flower, error) {
	return Parse(bytes.NewReader(irisCSV))
}

// Parse читает записи из CSV вида
// sepal_length,sepal_width,petal_length,petal_width,species.
//
// Все четыре измерения обязаны быть строго положительными числами,
// вид — непустой меткой. Производные атрибуты вычисляются здесь же.
// Порядок записей в файле становится порядком вставки (и полем ID).
func Parse(r io.Reader) ([]domain.Flower, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	first, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrUnavailable, err)
	}
	for i, want := range header {
		if first[i] != want {
			return nil, fmt.Errorf("%w: unexpected header column %q, want %q", ErrUnavailable, first[i], want)
		}
	}

	var flowers []domain.Flower
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row: %v", ErrUnavailable, err)
		}
		line++

		fl := domain.Flower{ID: len(flowers) + 1, Species: row[4]}
		measurements := []struct {
			name string
			dst  *float64
		}{
			{"sepal_length", &fl.SepalLength},
			{"sepal_width", &fl.SepalWidth},
			{"petal_length", &fl.PetalLength},
			{"petal_width", &fl.PetalWidth},
		}
		for i, m := range measurements {
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %s is not a number: %q", ErrUnavailable, line, m.name, row[i])
			}
			if v <= 0 {
				return nil, fmt.Errorf("%w: line %d: %s must be positive, got %g", ErrUnavailable, line, m.name, v)
			}
			*m.dst = v
		}
		if fl.Species == "" {
			return nil, fmt.Errorf("%w: line %d: empty species", ErrUnavailable, line)
		}

		fl.ComputeDerived()
		flowers = append(flowers, fl)
	}

	if len(flowers) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrUnavailable)
	}
	return flowers, nil
}
