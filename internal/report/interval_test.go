package report

import (
	"math"
	"testing"
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestParseInterval(t *testing.T) {
	for _, s := range []string{"daily", "weekly", "monthly", "yearly"} {
		interval, err := ParseInterval(s)
		if err != nil {
			t.Errorf("expected %q to parse, got error: %v", s, err)
		}
		if string(interval) != s {
			t.Errorf("expected interval %q, got %q", s, interval)
		}
	}

	for _, s := range []string{"", "hourly", "DAILY", "week"} {
		if _, err := ParseInterval(s); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestDefaultStart(t *testing.T) {
	end := date(2025, time.July, 15)

	tests := []struct {
		interval Interval
		expected time.Time
	}{
		{Daily, end.AddDate(0, 0, -30)},
		{Weekly, end.AddDate(0, 0, -84)},
		{Monthly, end.AddDate(0, 0, -365)},
		{Yearly, end.AddDate(0, 0, -1825)},
	}

	for _, tt := range tests {
		if got := DefaultStart(tt.interval, end); !got.Equal(tt.expected) {
			t.Errorf("%s: expected %v, got %v", tt.interval, tt.expected, got)
		}
	}
}

func TestBucketLabel(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		interval Interval
		expected string
	}{
		{"daily", date(2025, time.July, 3), Daily, "2025-07-03"},
		{"monthly", date(2025, time.July, 3), Monthly, "2025-07"},
		{"yearly", date(2025, time.July, 3), Yearly, "2025"},
		{"weekly mid-year", date(2025, time.July, 3), Weekly, "2025-27"},
		{"weekly single digit is padded", date(2025, time.January, 8), Weekly, "2025-02"},
		// ISO weeks: the last days of December can belong to week 1 of the
		// next year, and early January to the last week of the previous one.
		{"weekly year start belongs to previous ISO year", date(2021, time.January, 1), Weekly, "2020-53"},
		{"weekly year end belongs to next ISO year", date(2024, time.December, 30), Weekly, "2025-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BucketLabel(tt.t, tt.interval); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAggregate_SingleDailyBucket(t *testing.T) {
	day := date(2025, time.July, 3)
	sales := []models.Sale{
		{ID: 1, ProductID: 1, TotalAmount: 199.98, SaleDate: day},
		{ID: 2, ProductID: 1, TotalAmount: 99.99, SaleDate: day.Add(2 * time.Hour)},
	}

	buckets := Aggregate(sales, Daily)
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Interval != "2025-07-03" {
		t.Errorf("expected label 2025-07-03, got %q", buckets[0].Interval)
	}
	if math.Abs(buckets[0].Revenue-299.97) > 1e-9 {
		t.Errorf("expected revenue 299.97, got %v", buckets[0].Revenue)
	}
	if buckets[0].TotalSales != 2 {
		t.Errorf("expected 2 total sales, got %d", buckets[0].TotalSales)
	}
}

func TestAggregate_EmptyBucketsNotEmitted(t *testing.T) {
	sales := []models.Sale{
		{ID: 1, TotalAmount: 10, SaleDate: date(2025, time.July, 1)},
		{ID: 2, TotalAmount: 20, SaleDate: date(2025, time.July, 3)},
	}

	buckets := Aggregate(sales, Daily)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets (no empty bucket for July 2), got %d", len(buckets))
	}
}

func TestAggregate_AscendingLabelOrder(t *testing.T) {
	sales := []models.Sale{
		{ID: 1, TotalAmount: 10, SaleDate: date(2025, time.July, 9)},
		{ID: 2, TotalAmount: 20, SaleDate: date(2025, time.March, 2)},
		{ID: 3, TotalAmount: 30, SaleDate: date(2024, time.December, 25)},
	}

	buckets := Aggregate(sales, Monthly)
	expected := []string{"2024-12", "2025-03", "2025-07"}
	if len(buckets) != len(expected) {
		t.Fatalf("expected %d buckets, got %d", len(expected), len(buckets))
	}
	for i, label := range expected {
		if buckets[i].Interval != label {
			t.Errorf("bucket %d: expected label %q, got %q", i, label, buckets[i].Interval)
		}
	}
}

func TestAggregate_NoSales(t *testing.T) {
	buckets := Aggregate(nil, Daily)
	if len(buckets) != 0 {
		t.Errorf("expected no buckets, got %d", len(buckets))
	}
}
