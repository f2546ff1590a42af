package availability

import "errors"

var (
	// ErrInvalidArgument возвращается при некорректных входных данных правил.
	// Это ошибка вызывающей стороны: движок ничего не меняет и не исправляет значения.
	ErrInvalidArgument = errors.New("availability: invalid argument")
)
