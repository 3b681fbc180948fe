package verification

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("verification client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("verification client: invalid response")

	// ErrUnavailable возвращается, когда сервис кодов недоступен или ответил 5xx
	// Бронирование при этом остается сохраненным без кода (verification pending)
	ErrUnavailable = errors.New("verification client: service unavailable")
)
