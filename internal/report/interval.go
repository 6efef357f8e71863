package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

// Interval is a revenue aggregation granularity.
type Interval string

const (
	Daily   Interval = "daily"
	Weekly  Interval = "weekly"
	Monthly Interval = "monthly"
	Yearly  Interval = "yearly"
)

// ErrInvalidInterval is returned when an interval string is not one of
// daily, weekly, monthly or yearly.
var ErrInvalidInterval = errors.New("interval must be one of: daily, weekly, monthly, yearly")

// ParseInterval validates and converts an interval query parameter.
func ParseInterval(s string) (Interval, error) {
	switch Interval(s) {
	case Daily, Weekly, Monthly, Yearly:
		return Interval(s), nil
	}
	return "", ErrInvalidInterval
}

// DefaultStart returns the default lower bound of a revenue query relative
// to its end date: 30 days for daily, 12 weeks for weekly, 365 days for
// monthly and 5 years for yearly.
func DefaultStart(interval Interval, end time.Time) time.Time {
	switch interval {
	case Daily:
		return end.AddDate(0, 0, -30)
	case Weekly:
		return end.AddDate(0, 0, -12*7)
	case Monthly:
		return end.AddDate(0, 0, -365)
	default:
		return end.AddDate(0, 0, -365*5)
	}
}

// BucketLabel derives the grouping label for a sale date. The same function
// labels buckets for every storage backend, so grouping and labeling can
// never use different week-numbering conventions. Weeks are ISO-8601 weeks.
func BucketLabel(t time.Time, interval Interval) string {
	switch interval {
	case Daily:
		return t.Format("2006-01-02")
	case Weekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-%02d", year, week)
	case Monthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006")
	}
}

// RevenueBucket is one aggregated row of a revenue report.
type RevenueBucket struct {
	Interval   string  `json:"interval"`
	Revenue    float64 `json:"revenue"`
	TotalSales int     `json:"total_sales"`
}

// Aggregate buckets sales by interval label, summing total_amount and
// counting rows per bucket. Only buckets with at least one sale are emitted,
// in ascending label order (labels are zero-padded, so lexicographic order
// is chronological).
func Aggregate(sales []models.Sale, interval Interval) []RevenueBucket {
	byLabel := make(map[string]*RevenueBucket)
	for _, s := range sales {
		label := BucketLabel(s.SaleDate, interval)
		b, ok := byLabel[label]
		if !ok {
			b = &RevenueBucket{Interval: label}
			byLabel[label] = b
		}
		b.Revenue += s.TotalAmount
		b.TotalSales++
	}

	buckets := make([]RevenueBucket, 0, len(byLabel))
	for _, b := range byLabel {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Interval < buckets[j].Interval
	})
	return buckets
}
