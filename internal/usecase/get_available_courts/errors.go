package get_available_courts

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_courts: invalid input data")

	// ErrUnknownSlot возвращается, когда слот не входит в каталог
	ErrUnknownSlot = errors.New("get_available_courts: unknown slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_courts: internal error")
)
