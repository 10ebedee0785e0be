package query

import "errors"

// Ошибки движка запросов.
var (
	// ErrInvalidFilter — некорректный фильтр: неизвестный атрибут,
	// min > max, нечисловое значение границы или плохая сортировка.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrUnknownAttribute — статистика запрошена по неизвестному
	// или нечисловому атрибуту.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrInvalidArgument — неизвестный вид статистики или
	// параметр квантили вне [0, 1].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyPopulation — после применения фильтра не осталось записей.
	ErrEmptyPopulation = errors.New("empty population")
)

// Error — ошибка запроса с контекстом.
type Error struct {
	Attribute string // атрибут, вызвавший ошибку (может быть пустым)
	Message   string // описание ошибки
	Err       error  // базовая ошибка таксономии
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	if e.Attribute != "" {
		return e.Attribute + ": " + e.Message
	}
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError создаёт новую ошибку запроса.
func NewError(attribute, message string, err error) *Error {
	return &Error{
		Attribute: attribute,
		Message:   message,
		Err:       err,
	}
}
