package report

import "time"

// Period is a closed date range with its total revenue.
type Period struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Revenue   float64   `json:"revenue"`
}

// Comparison holds two periods' revenue and the percentage change between them.
type Comparison struct {
	CurrentPeriod    Period  `json:"current_period"`
	PreviousPeriod   Period  `json:"previous_period"`
	PercentageChange float64 `json:"percentage_change"`
}

// PreviousPeriod derives the default comparison range from the current one:
// a range of the same whole-day length ending one day before the current
// range starts.
func PreviousPeriod(currentStart, currentEnd time.Time) (time.Time, time.Time) {
	days := int(currentEnd.Sub(currentStart).Hours() / 24)
	previousEnd := currentStart.AddDate(0, 0, -1)
	previousStart := previousEnd.AddDate(0, 0, -days)
	return previousStart, previousEnd
}

// PercentageChange computes the relative revenue change between two periods.
// A period with no previous revenue reports 100% growth when the current
// period sold anything, and 0% when both periods are empty.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// Compare assembles a Comparison from the two period sums.
func Compare(currentStart, currentEnd time.Time, currentRevenue float64,
	previousStart, previousEnd time.Time, previousRevenue float64) Comparison {
	return Comparison{
		CurrentPeriod: Period{
			StartDate: currentStart,
			EndDate:   currentEnd,
			Revenue:   currentRevenue,
		},
		PreviousPeriod: Period{
			StartDate: previousStart,
			EndDate:   previousEnd,
			Revenue:   previousRevenue,
		},
		PercentageChange: PercentageChange(currentRevenue, previousRevenue),
	}
}
