package reservation

import (
	"fmt"
	"time"

	"github.com/thefaderoom/faderoom-api/internal/httperr"
)

const DateLayout = "2006-01-02"

// NormalizeClock canonicalizes a reservation time to "HH:MM:SS" and
// rejects anything off the 30-minute grid.
func NormalizeClock(clock string) (string, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		t, err = time.Parse("15:04", clock)
	}
	if err != nil {
		return "", httperr.ErrBusiness("invalid_time")
	}

	if t.Second() != 0 || t.Minute()%30 != 0 {
		return "", httperr.ErrBusiness("invalid_time")
	}

	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute()), nil
}

// NormalizeDate canonicalizes a reservation date to "2006-01-02".
func NormalizeDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return t.Format(DateLayout), nil
}

// Weekday returns the 0=Sunday..6=Saturday index used as the
// working-hours key.
func Weekday(date string) (int, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date")
	}
	return int(t.Weekday()), nil
}
