package reservation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thefaderoom/faderoom-api/internal/models"
)

// DayStatus reports whether a date produced bookable slots.
type DayStatus string

const (
	DayStatusUnknown DayStatus = "unknown"
	DayStatusClosed  DayStatus = "closed"
	DayStatusOpen    DayStatus = "open"
)

// TimeSlot is derived per request, never persisted.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// BuildSlots derives the bookable slots for one day from its weekly
// schedule and the set of already-occupied "HH:MM:SS" times.
//
// Slots are emitted on a fixed 30-minute grid: for each whole hour h in
// [start_hour, end_hour) both h:00 and h:30 are produced. A window ending
// at a non-zero minute truncates to the last full hour boundary.
// Occupancy is an exact string match on the slot time; no duration-aware
// overlap is attempted.
func BuildSlots(wh *models.WorkingHours, occupied map[string]bool) ([]TimeSlot, DayStatus) {
	if wh == nil || wh.IsClosed {
		return nil, DayStatusClosed
	}

	startHour, err := clockHour(wh.StartTime)
	if err != nil {
		return nil, DayStatusClosed
	}
	endHour, err := clockHour(wh.EndTime)
	if err != nil {
		return nil, DayStatusClosed
	}

	var slots []TimeSlot
	for hour := startHour; hour < endHour; hour++ {
		for minute := 0; minute < 60; minute += 30 {
			t := fmt.Sprintf("%02d:%02d:00", hour, minute)
			slots = append(slots, TimeSlot{
				Time:      t,
				Available: !occupied[t],
			})
		}
	}

	return slots, DayStatusOpen
}

func clockHour(clock string) (int, error) {
	head, _, ok := strings.Cut(clock, ":")
	if !ok {
		head = clock
	}
	return strconv.Atoi(head)
}
