package domain

// Flower — одна запись измерений ириса из эталонного датасета.
//
// Четыре базовых измерения (в сантиметрах, строго положительные)
// загружаются из CSV; производные атрибуты (площади и отношения)
// вычисляются один раз при загрузке и дальше не меняются.
type Flower struct {
	// ID — порядковый номер записи в датасете (1..150).
	ID int `json:"id"`

	// SepalLength — длина чашелистика, см.
	SepalLength float64 `json:"sepal_length"`

	// SepalWidth — ширина чашелистика, см.
	SepalWidth float64 `json:"sepal_width"`

	// PetalLength — длина лепестка, см.
	PetalLength float64 `json:"petal_length"`

	// PetalWidth — ширина лепестка, см.
	PetalWidth float64 `json:"petal_width"`

	// SepalArea — площадь чашелистика (sepal_length * sepal_width).
	SepalArea float64 `json:"sepal_area"`

	// PetalArea — площадь лепестка (petal_length * petal_width).
	PetalArea float64 `json:"petal_area"`

	// SepalToPetalAreaRatio — отношение площадей чашелистика и лепестка.
	SepalToPetalAreaRatio float64 `json:"sepal_to_petal_area_ratio"`

	// SepalToPetalLengthRatio — отношение длин чашелистика и лепестка.
	SepalToPetalLengthRatio float64 `json:"sepal_to_petal_length_ratio"`

	// SepalToPetalWidthRatio — отношение ширин чашелистика и лепестка.
	SepalToPetalWidthRatio float64 `json:"sepal_to_petal_width_ratio"`

	// Species — метка вида (setosa, versicolor, virginica).
	Species string `json:"species"`
}

// ComputeDerived вычисляет производные атрибуты из базовых измерений.
// Измерения строго положительны, поэтому отношения всегда определены.
func (f *Flower) ComputeDerived() {
	f.SepalArea = f.SepalLength * f.SepalWidth
	f.PetalArea = f.PetalLength * f.PetalWidth
	f.SepalToPetalAreaRatio = f.SepalArea / f.PetalArea
	f.SepalToPetalLengthRatio = f.SepalLength / f.PetalLength
	f.SepalToPetalWidthRatio = f.SepalWidth / f.PetalWidth
}
