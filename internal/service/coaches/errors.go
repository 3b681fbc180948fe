package coaches

import "errors"

var (
	// ErrCoachNotFound возвращается, когда профиль тренера не найден
	ErrCoachNotFound = errors.New("coach not found")

	// ErrProfileExists возвращается, когда у пользователя уже есть профиль тренера
	ErrProfileExists = errors.New("coach profile already exists")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
