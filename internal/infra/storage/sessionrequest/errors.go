package sessionrequest

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("sessionrequest.repository: request not found")

	// ErrStatusChanged возвращается, когда условное обновление не нашло заявку в ожидаемом статусе
	ErrStatusChanged = errors.New("sessionrequest.repository: request status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sessionrequest.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sessionrequest.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sessionrequest.repository: failed to scan row")

	// ErrEncodeSlots возвращается при ошибке кодирования пар (дата, слот)
	ErrEncodeSlots = errors.New("sessionrequest.repository: failed to encode slots")
)
