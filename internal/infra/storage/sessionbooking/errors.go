package sessionbooking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование тренировки не найдено
	ErrBookingNotFound = errors.New("sessionbooking.repository: booking not found")

	// ErrAlreadyBooked возвращается, когда для заявки уже создано бронирование
	ErrAlreadyBooked = errors.New("sessionbooking.repository: request already booked")

	// ErrVerificationCodeTaken возвращается при коллизии кода подтверждения
	ErrVerificationCodeTaken = errors.New("sessionbooking.repository: verification code already used")

	// ErrVerificationAlreadyAttached возвращается, когда у бронирования уже есть код подтверждения
	ErrVerificationAlreadyAttached = errors.New("sessionbooking.repository: verification already attached")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sessionbooking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sessionbooking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sessionbooking.repository: failed to scan row")

	// ErrEncodeSlots возвращается при ошибке кодирования пар (дата, слот)
	ErrEncodeSlots = errors.New("sessionbooking.repository: failed to encode slots")
)
