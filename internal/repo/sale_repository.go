package repo

import (
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
	"github.com/rogerio-castellano/ecommerce-admin/internal/report"
)

// SaleRepository defines the interface for sale data operations and the
// aggregate revenue queries built on top of them.
type SaleRepository interface {
	Create(sale models.Sale) (models.Sale, error)
	// Filter returns sales matching all supplied filters ordered by
	// sale_date descending, plus the total match count before pagination.
	Filter(sf SaleFilter) ([]models.Sale, int, error)
	// RevenueByInterval buckets sales with sale_date in [start, end] and
	// sums revenue per bucket. Empty buckets are not emitted.
	RevenueByInterval(interval report.Interval, start, end time.Time) ([]report.RevenueBucket, error)
	// RevenueBetween sums total_amount over [start, end], 0 when no rows match.
	RevenueBetween(start, end time.Time) (float64, error)
}
