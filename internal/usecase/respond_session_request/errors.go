package respond_session_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("respond_session_request: invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("respond_session_request: request not found")

	// ErrForbidden возвращается, когда отвечает не тренер заявки
	ErrForbidden = errors.New("respond_session_request: only the requested coach can respond")

	// ErrInvalidState возвращается, когда заявка уже не в статусе pending
	ErrInvalidState = errors.New("respond_session_request: request is not pending")

	// ErrCourtNotFound возвращается, когда назначаемый корт не найден
	ErrCourtNotFound = errors.New("respond_session_request: court not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("respond_session_request: internal error")
)
