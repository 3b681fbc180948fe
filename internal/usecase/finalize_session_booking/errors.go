package finalize_session_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("finalize_session_booking: invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("finalize_session_booking: request not found")

	// ErrForbidden возвращается, когда оформляет не автор заявки и не тренер
	ErrForbidden = errors.New("finalize_session_booking: only the requester or the coach can finalize")

	// ErrPreconditionFailed общая ошибка невыполненного предусловия
	// Всегда оборачивается вместе с одной из ошибок ниже
	ErrPreconditionFailed = errors.New("finalize_session_booking: precondition failed")

	// ErrNotAccepted заявка не в статусе accepted
	ErrNotAccepted = errors.New("not_accepted")

	// ErrMissingReceipt к заявке не прикреплен чек
	ErrMissingReceipt = errors.New("missing_receipt")

	// ErrMissingPrice у тренера нет цены для типа тренировки
	ErrMissingPrice = errors.New("missing_price")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("finalize_session_booking: internal error")
)

// PreconditionReason код невыполненного предусловия или пустая строка
func PreconditionReason(err error) string {
	for _, reason := range []error{ErrNotAccepted, ErrMissingReceipt, ErrMissingPrice} {
		if errors.Is(err, reason) {
			return reason.Error()
		}
	}
	return ""
}
