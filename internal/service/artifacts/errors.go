package artifacts

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование исчезло между фазами записи
	ErrBookingNotFound = errors.New("artifacts: booking not found")

	// ErrGenerationFailed возвращается, когда код не удалось выпустить или прикрепить
	// Бронирование остается сохраненным с verification pending
	ErrGenerationFailed = errors.New("artifacts: verification artifact generation failed")

	errStoredArtifactMissing = errors.New("artifacts: stored verification artifact missing")
)
