package check_slot_conflicts

import "time"

// Request модель запроса на проверку пересечений
type Request struct {
	CourtID int64
	Sport   string
	Date    time.Time
	Slots   []string
}

// Response результат проверки
type Response struct {
	OK        bool     // true, если ни один слот не занят
	Conflicts []string // занятые слоты в порядке запроса
}
