package create_facility_booking

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_facility_booking: invalid input data")

	// ErrEmptySlots возвращается, когда не выбран ни один слот
	ErrEmptySlots = errors.New("create_facility_booking: at least one slot is required")

	// ErrUnknownSlots возвращается, когда слот не входит в каталог
	ErrUnknownSlots = errors.New("create_facility_booking: unknown slots")

	// ErrDateInPast возвращается, когда дата бронирования раньше сегодняшней
	ErrDateInPast = errors.New("create_facility_booking: booking date is in the past")

	// ErrMissingPaymentProof возвращается, когда не приложен чек оплаты
	ErrMissingPaymentProof = errors.New("create_facility_booking: payment proof is required")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_facility_booking: court not found")

	// ErrSportNotOffered возвращается, когда вид спорта недоступен на объекте корта
	ErrSportNotOffered = errors.New("create_facility_booking: sport is not offered at this facility")

	// ErrSlotConflict возвращается, когда слоты уже заняты (см. SlotConflictError)
	ErrSlotConflict = errors.New("create_facility_booking: slots already reserved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_facility_booking: internal error")
)

// SlotConflictError занятые слоты в порядке запроса
type SlotConflictError struct {
	Slots []string
}

func (e *SlotConflictError) Error() string {
	return ErrSlotConflict.Error() + ": " + strings.Join(e.Slots, ", ")
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}

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
