package coach

import "errors"

var (
	// ErrCoachNotFound возвращается, когда профиль тренера не найден
	ErrCoachNotFound = errors.New("coach.repository: coach not found")

	// ErrProfileExists возвращается, когда у пользователя уже есть профиль тренера
	ErrProfileExists = errors.New("coach.repository: coach profile already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("coach.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("coach.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("coach.repository: failed to scan row")
)
