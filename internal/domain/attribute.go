package domain

// Attribute — имя числового атрибута записи.
//
// Атрибутом может быть любое из четырёх базовых измерений
// или один из производных атрибутов. Видовая метка (species)
// атрибутом не является — она категориальная.
type Attribute string

const (
	AttrSepalLength             Attribute = "sepal_length"
	AttrSepalWidth              Attribute = "sepal_width"
	AttrPetalLength             Attribute = "petal_length"
	AttrPetalWidth              Attribute = "petal_width"
	AttrSepalArea               Attribute = "sepal_area"
	AttrPetalArea               Attribute = "petal_area"
	AttrSepalToPetalAreaRatio   Attribute = "sepal_to_petal_area_ratio"
	AttrSepalToPetalLengthRatio Attribute = "sepal_to_petal_length_ratio"
	AttrSepalToPetalWidthRatio  Attribute = "sepal_to_petal_width_ratio"
)

// attributes — канонический порядок числовых атрибутов.
var attributes = []Attribute{
	AttrSepalLength,
	AttrSepalWidth,
	AttrPetalLength,
	AttrPetalWidth,
	AttrSepalArea,
	AttrPetalArea,
	AttrSepalToPetalAreaRatio,
	AttrSepalToPetalLengthRatio,
	AttrSepalToPetalWidthRatio,
}

// Attributes возвращает все числовые атрибуты в каноническом порядке.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes)
	return out
}

// ParseAttribute проверяет, что s — имя известного числового атрибута.
func ParseAttribute(s string) (Attribute, bool) {
	for _, a := range attributes {
		if s == string(a) {
			return a, true
		}
	}
	return "", false
}

// Value возвращает значение атрибута записи.
func (a Attribute) Value(f Flower) float64 {
	switch a {
	case AttrSepalLength:
		return f.SepalLength
	case AttrSepalWidth:
		return f.SepalWidth
	case AttrPetalLength:
		return f.PetalLength
	case AttrPetalWidth:
		return f.PetalWidth
	case AttrSepalArea:
		return f.SepalArea
	case AttrPetalArea:
		return f.PetalArea
	case AttrSepalToPetalAreaRatio:
		return f.SepalToPetalAreaRatio
	case AttrSepalToPetalLengthRatio:
		return f.SepalToPetalLengthRatio
	case AttrSepalToPetalWidthRatio:
		return f.SepalToPetalWidthRatio
	default:
		return 0
	}
}
