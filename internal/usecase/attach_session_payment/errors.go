package attach_session_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("attach_session_payment: invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("attach_session_payment: request not found")

	// ErrForbidden возвращается, когда чек прикрепляет не автор заявки
	ErrForbidden = errors.New("attach_session_payment: only the requester can attach payment proof")

	// ErrInvalidState возвращается, когда заявка уже оформлена
	ErrInvalidState = errors.New("attach_session_payment: request is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("attach_session_payment: internal error")
)
