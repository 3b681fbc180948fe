// Package codec кодирует составные значения для хранения в JSONB колонках
package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportsBookingService/internal/domain"
)

type sessionSlotJSON struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

// MarshalSessionSlots сериализует пары (дата, слот) в JSON
func MarshalSessionSlots(slots []domain.SessionSlot) ([]byte, error) {
	out := make([]sessionSlotJSON, 0, len(slots))
	for _, s := range slots {
		out = append(out, sessionSlotJSON{Date: s.Date.Format(domain.DateFormat), Slot: s.Slot})
	}
	return json.Marshal(out)
}

// UnmarshalSessionSlots разбирает JSON, записанный MarshalSessionSlots
func UnmarshalSessionSlots(data []byte) ([]domain.SessionSlot, error) {
	var raw []sessionSlotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	slots := make([]domain.SessionSlot, 0, len(raw))
	for _, r := range raw {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, fmt.Errorf("codec: invalid date %q: %w", r.Date, err)
		}
		slots = append(slots, domain.SessionSlot{Date: date, Slot: r.Slot})
	}
	return slots, nil
}
