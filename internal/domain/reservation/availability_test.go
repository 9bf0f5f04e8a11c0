package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thefaderoom/faderoom-api/internal/models"
)

func TestBuildSlots(t *testing.T) {
	tests := []struct {
		name       string
		wh         *models.WorkingHours
		occupied   map[string]bool
		wantStatus DayStatus
		wantTimes  []string
		wantTaken  []string
	}{
		{
			name:       "no schedule row",
			wh:         nil,
			wantStatus: DayStatusClosed,
		},
		{
			name:       "closed day",
			wh:         &models.WorkingHours{StartTime: "09:00:00", EndTime: "12:00:00", IsClosed: true},
			wantStatus: DayStatusClosed,
		},
		{
			name:       "open morning, nothing booked",
			wh:         &models.WorkingHours{StartTime: "09:00:00", EndTime: "12:00:00"},
			wantStatus: DayStatusOpen,
			wantTimes: []string{
				"09:00:00", "09:30:00",
				"10:00:00", "10:30:00",
				"11:00:00", "11:30:00",
			},
		},
		{
			name:       "one slot taken",
			wh:         &models.WorkingHours{StartTime: "09:00:00", EndTime: "12:00:00"},
			occupied:   map[string]bool{"10:00:00": true},
			wantStatus: DayStatusOpen,
			wantTimes: []string{
				"09:00:00", "09:30:00",
				"10:00:00", "10:30:00",
				"11:00:00", "11:30:00",
			},
			wantTaken: []string{"10:00:00"},
		},
		{
			// An end time on the half hour truncates to the last full
			// hour boundary, so 11:00 and 11:30 are never offered.
			name:       "half-hour end truncates",
			wh:         &models.WorkingHours{StartTime: "09:00:00", EndTime: "11:30:00"},
			wantStatus: DayStatusOpen,
			wantTimes: []string{
				"09:00:00", "09:30:00",
				"10:00:00", "10:30:00",
			},
		},
		{
			name:       "garbage start time closes the day",
			wh:         &models.WorkingHours{StartTime: "soon", EndTime: "12:00:00"},
			wantStatus: DayStatusClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, status := BuildSlots(tt.wh, tt.occupied)

			assert.Equal(t, tt.wantStatus, status)
			assert.Len(t, slots, len(tt.wantTimes))

			taken := map[string]bool{}
			for _, s := range tt.wantTaken {
				taken[s] = true
			}

			for i, slot := range slots {
				assert.Equal(t, tt.wantTimes[i], slot.Time)
				assert.Equal(t, !taken[slot.Time], slot.Available, "slot %s", slot.Time)
			}
		})
	}
}
