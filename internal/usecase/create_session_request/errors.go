package create_session_request

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_session_request: invalid input data")

	// ErrEmptySlots возвращается, когда не выбрана ни одна пара
	ErrEmptySlots = errors.New("create_session_request: at least one slot is required")

	// ErrCoachNotFound возвращается, когда профиль тренера не найден
	ErrCoachNotFound = errors.New("create_session_request: coach not found")

	// ErrSportMismatch возвращается, когда тренер не ведет указанный вид спорта
	ErrSportMismatch = errors.New("create_session_request: coach does not train this sport")

	// ErrUnavailableSlots возвращается, когда пар нет в окне тренера (см. UnavailableSlotsError)
	ErrUnavailableSlots = errors.New("create_session_request: slots are not in coach availability")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_session_request: internal error")
)

// UnavailableSlotsError пары, которых нет в текущем окне тренера
type UnavailableSlotsError struct {
	Slots []domain.SessionSlot
}

func (e *UnavailableSlotsError) Error() string {
	parts := make([]string, 0, len(e.Slots))
	for _, s := range e.Slots {
		parts = append(parts, s.Date.Format(domain.DateFormat)+" "+s.Slot)
	}
	return ErrUnavailableSlots.Error() + ": " + strings.Join(parts, ", ")
}

func (e *UnavailableSlotsError) Unwrap() error {
	return ErrUnavailableSlots
}
