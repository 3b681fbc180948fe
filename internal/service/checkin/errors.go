package checkin

import "errors"

var (
	// ErrCodeNotFound возвращается, когда код не принадлежит ни одному бронированию
	ErrCodeNotFound = errors.New("verification code not found")

	// ErrAccessDenied возвращается, когда проверять коды пытается не охрана и не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при пустом коде
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
