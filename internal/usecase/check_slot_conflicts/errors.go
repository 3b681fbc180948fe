package check_slot_conflicts

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_slot_conflicts: invalid input data")

	// ErrUnknownSlots возвращается, когда слот не входит в каталог
	ErrUnknownSlots = errors.New("check_slot_conflicts: unknown slots")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("check_slot_conflicts: court not found")

	// ErrSportNotOffered возвращается, когда вид спорта недоступен на объекте корта
	ErrSportNotOffered = errors.New("check_slot_conflicts: sport is not offered at this facility")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_slot_conflicts: internal error")
)

// UnknownSlotsError слоты, которых нет в каталоге
type UnknownSlotsError struct {
	Slots []string
}

func (e *UnknownSlotsError) Error() string {
	return ErrUnknownSlots.Error() + ": " + strings.Join(e.Slots, ", ")
}

func (e *UnknownSlotsError) Unwrap() error {
	return ErrUnknownSlots
}
