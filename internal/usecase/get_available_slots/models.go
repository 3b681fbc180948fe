package get_available_slots

import (
	"time"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CourtID int64     // ID корта
	Sport   string    // Вид спорта
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	CourtID  int64     // ID корта
	Sport    string    // Вид спорта (нормализованный)
	Date     time.Time // Дата, на которую запрашивались слоты
	Slots    []string  // Свободные слоты в порядке каталога
	Reserved []string  // Занятые слоты в порядке каталога
}
