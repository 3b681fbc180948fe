package create_facility_booking

import (
	"time"
)

// Request модель запроса на бронирование корта
type Request struct {
	UserID          int64     // ID пользователя
	CourtID         int64     // ID корта
	Sport           string    // Вид спорта
	Date            time.Time // Дата бронирования (без времени)
	Slots           []string  // Слоты из каталога, хотя бы один
	PaymentProofURL string    // Ссылка на чек оплаты
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	UserID          int64
	CourtID         int64
	Sport           string
	BookingDate     time.Time
	Slots           []string
	UnitPrice       float64
	TotalPrice      float64
	PaymentProofURL string

	// Пусты, если код подтверждения еще не выпущен (VerificationPending = true)
	VerificationCode    *string
	VerificationURL     *string
	VerificationPending bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Options параметры повтора атомарной вставки
type Options struct {
	Attempts uint          // Сколько раз повторять транзакцию при конфликте сериализации
	Delay    time.Duration // Пауза между попытками
}

// bookingCreatedEvent событие facility_booking.created
type bookingCreatedEvent struct {
	BookingID           int64    `json:"booking_id"`
	UserID              int64    `json:"user_id"`
	CourtID             int64    `json:"court_id"`
	Sport               string   `json:"sport"`
	Date                string   `json:"date"`
	Slots               []string `json:"slots"`
	TotalPrice          float64  `json:"total_price"`
	VerificationPending bool     `json:"verification_pending"`
}
