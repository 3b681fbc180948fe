package get_available_courts

import "time"

// Request модель запроса свободных кортов
type Request struct {
	Sport string    // Вид спорта
	Date  time.Time // Дата (без времени)
	Slot  string    // Слот из каталога
}

// Response модель ответа со списком свободных кортов
type Response struct {
	Sport  string
	Date   time.Time
	Slot   string
	Courts []Court
}

// Court свободный корт
type Court struct {
	CourtID      int64
	Number       int
	Name         string
	FacilityID   int64
	FacilityName string
	PricePerSlot float64
}
