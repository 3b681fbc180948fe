package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotAlreadyReserved возвращается, когда уникальный индекс слотов отверг вставку
	// (слот занят параллельной транзакцией)
	ErrSlotAlreadyReserved = errors.New("booking.repository: slot already reserved")

	// ErrVerificationCodeTaken возвращается при коллизии кода подтверждения
	ErrVerificationCodeTaken = errors.New("booking.repository: verification code already used")

	// ErrVerificationAlreadyAttached возвращается, когда у бронирования уже есть код подтверждения
	ErrVerificationAlreadyAttached = errors.New("booking.repository: verification already attached")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
