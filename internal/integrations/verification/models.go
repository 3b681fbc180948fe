package verification

// Kind тип бронирования, для которого выпускается код
type Kind string

const (
	KindFacility Kind = "facility"
	KindSession  Kind = "session"
)

// Artifact код подтверждения и ссылка на его отображение (QR)
type Artifact struct {
	Code string
	URL  string
}

// issueRequest тело запроса на регистрацию кода
type issueRequest struct {
	Code      string `json:"code"`
	Kind      Kind   `json:"kind"`
	BookingID int64  `json:"booking_id"`
}

// issueResponse ответ сервиса кодов
type issueResponse struct {
	URL string `json:"url"`
}

// ErrorResponse модель ошибки от сервиса кодов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
