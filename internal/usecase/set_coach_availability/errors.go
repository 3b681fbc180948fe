package set_coach_availability

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_coach_availability: invalid input data")

	// ErrUnknownSlots возвращается, когда слот не входит в каталог
	ErrUnknownSlots = errors.New("set_coach_availability: unknown slots")

	// ErrOutsideWindow возвращается, когда дата вне окна [сегодня, сегодня+7]
	ErrOutsideWindow = errors.New("set_coach_availability: dates outside availability window")

	// ErrCoachNotFound возвращается, когда профиль тренера не найден
	ErrCoachNotFound = errors.New("set_coach_availability: coach not found")

	// ErrForbidden возвращается, когда профиль принадлежит другому пользователю
	ErrForbidden = errors.New("set_coach_availability: profile belongs to another user")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_coach_availability: internal error")
)

// OutsideWindowError пары с датой вне окна доступности
type OutsideWindowError struct {
	Slots []domain.SessionSlot
}

func (e *OutsideWindowError) Error() string {
	return ErrOutsideWindow.Error() + ": " + joinSlots(e.Slots)
}

func (e *OutsideWindowError) Unwrap() error {
	return ErrOutsideWindow
}

// UnknownSlotsError пары со слотом не из каталога
type UnknownSlotsError struct {
	Slots []domain.SessionSlot
}

func (e *UnknownSlotsError) Error() string {
	return ErrUnknownSlots.Error() + ": " + joinSlots(e.Slots)
}

func (e *UnknownSlotsError) Unwrap() error {
	return ErrUnknownSlots
}

func joinSlots(slots []domain.SessionSlot) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, s.Date.Format(domain.DateFormat)+" "+s.Slot)
	}
	return strings.Join(parts, ", ")
}
