package set_coach_availability

import "github.com/m04kA/SMC-SportsBookingService/internal/domain"

// Mode способ применения нового набора пар
type Mode string

const (
	ModeReplace Mode = "replace" // окно заменяется целиком (по умолчанию)
	ModeAppend  Mode = "append"  // пары добавляются к текущему окну
)

// Request модель запроса на изменение окна доступности
type Request struct {
	ActorUserID int64 // пользователь, выполняющий запрос (должен владеть профилем)
	CoachID     int64
	Slots       []domain.SessionSlot
	Mode        Mode
}

// Response окно доступности после изменения
type Response struct {
	CoachID      int64
	Availability []domain.SessionSlot
}
