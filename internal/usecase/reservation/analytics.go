package reservation

import (
	"context"
	"time"

	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/timezone"
)

type PeriodStats struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type AnalyticsReport struct {
	TotalCompleted int     `json:"total_completed"`
	TotalRevenue   float64 `json:"total_revenue"`

	TodayCompleted int     `json:"today_completed"`
	TodayRevenue   float64 `json:"today_revenue"`

	Last30Completed int     `json:"last_30_completed"`
	Last30Revenue   float64 `json:"last_30_revenue"`

	Daily   []PeriodStats `json:"daily"`   // last 30 days, one entry per day
	Monthly []PeriodStats `json:"monthly"` // last 12 months, one entry per month
}

// Analytics aggregates completed reservations: counts and revenue,
// overall / today / trailing 30 days, plus daily and monthly series.
// A missing service_price counts as zero revenue.
type Analytics struct {
	repo domain.Repository
	now  func() time.Time
}

func NewAnalytics(repo domain.Repository) *Analytics {
	return &Analytics{repo: repo, now: timezone.Now}
}

func (uc *Analytics) Execute(ctx context.Context) (*AnalyticsReport, error) {
	completed, err := uc.repo.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	today := now.Format(domain.DateLayout)
	thirtyDaysAgo := now.AddDate(0, 0, -30).Format(domain.DateLayout)

	// Month arithmetic must start from the first of the month: AddDate
	// on day 29-31 normalizes into the following month and skips short
	// ones, duplicating and dropping labels in the series.
	monthAnchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	twelveMonthsAgo := monthAnchor.AddDate(0, -11, 0).Format(domain.DateLayout)

	byDay := make(map[string]PeriodStats)
	byMonth := make(map[string]PeriodStats)

	report := &AnalyticsReport{}

	for _, res := range completed {
		price := 0.0
		if res.ServicePrice != nil {
			price = *res.ServicePrice
		}

		report.TotalCompleted++
		report.TotalRevenue += price

		// Dates are "2006-01-02" strings; lexicographic order is
		// chronological order.
		if res.ReservationDate == today {
			report.TodayCompleted++
			report.TodayRevenue += price
		}

		if res.ReservationDate >= thirtyDaysAgo {
			report.Last30Completed++
			report.Last30Revenue += price

			s := byDay[res.ReservationDate]
			s.Count++
			s.Revenue += price
			byDay[res.ReservationDate] = s
		}

		if res.ReservationDate >= twelveMonthsAgo && len(res.ReservationDate) >= 7 {
			month := res.ReservationDate[:7]
			s := byMonth[month]
			s.Count++
			s.Revenue += price
			byMonth[month] = s
		}
	}

	for i := 29; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(domain.DateLayout)
		s := byDay[date]
		s.Date = date
		report.Daily = append(report.Daily, s)
	}

	for i := 11; i >= 0; i-- {
		month := monthAnchor.AddDate(0, -i, 0).Format("2006-01")
		s := byMonth[month]
		s.Date = month
		report.Monthly = append(report.Monthly, s)
	}

	return report, nil
}
