package report

import (
	"math"
	"testing"
	"time"
)

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{"zero previous with current revenue", 199.98, 0, 100},
		{"both zero", 0, 0, 0},
		{"doubled revenue is 100 percent", 199.98, 99.99, 100},
		{"halved revenue is negative", 50, 100, -50},
		{"unchanged revenue", 75.5, 75.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentageChange(tt.current, tt.previous)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPreviousPeriod(t *testing.T) {
	currentStart := date(2025, time.July, 8)
	currentEnd := date(2025, time.July, 15)

	previousStart, previousEnd := PreviousPeriod(currentStart, currentEnd)

	if expected := currentStart.AddDate(0, 0, -1); !previousEnd.Equal(expected) {
		t.Errorf("expected previous end %v, got %v", expected, previousEnd)
	}
	if expected := currentStart.AddDate(0, 0, -8); !previousStart.Equal(expected) {
		t.Errorf("expected previous start %v, got %v", expected, previousStart)
	}
}

func TestPreviousPeriod_SubDayRange(t *testing.T) {
	currentStart := date(2025, time.July, 15)
	currentEnd := currentStart.Add(6 * time.Hour)

	previousStart, previousEnd := PreviousPeriod(currentStart, currentEnd)

	// A range shorter than a day still shifts back one whole day.
	if expected := currentStart.AddDate(0, 0, -1); !previousEnd.Equal(expected) {
		t.Errorf("expected previous end %v, got %v", expected, previousEnd)
	}
	if !previousStart.Equal(previousEnd) {
		t.Errorf("expected zero-length previous period, got %v to %v", previousStart, previousEnd)
	}
}

func TestCompare(t *testing.T) {
	currentStart := date(2025, time.July, 8)
	currentEnd := date(2025, time.July, 15)
	previousStart := date(2025, time.July, 1)
	previousEnd := date(2025, time.July, 7)

	c := Compare(currentStart, currentEnd, 199.98, previousStart, previousEnd, 99.99)

	if c.CurrentPeriod.Revenue != 199.98 {
		t.Errorf("expected current revenue 199.98, got %v", c.CurrentPeriod.Revenue)
	}
	if c.PreviousPeriod.Revenue != 99.99 {
		t.Errorf("expected previous revenue 99.99, got %v", c.PreviousPeriod.Revenue)
	}
	if math.Abs(c.PercentageChange-100) > 0.01 {
		t.Errorf("expected percentage change of about 100, got %v", c.PercentageChange)
	}
	if !c.CurrentPeriod.StartDate.Equal(currentStart) || !c.PreviousPeriod.EndDate.Equal(previousEnd) {
		t.Error("expected period boundaries to be carried through")
	}
}
