package repo

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
	"github.com/rogerio-castellano/ecommerce-admin/internal/report"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
type InMemorySaleRepository struct {
	sales  []models.Sale
	nextID int
}

// NewInMemorySaleRepository creates a new instance of InMemorySaleRepository.
func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{
		sales:  []models.Sale{},
		nextID: 1,
	}
}

// Create adds a new sale record.
func (r *InMemorySaleRepository) Create(s models.Sale) (models.Sale, error) {
	s.ID = r.nextID
	r.nextID++
	s.CreatedAt = time.Now().UTC()
	r.sales = append(r.sales, s)
	return s, nil
}

func matchesSaleFilter(s models.Sale, sf SaleFilter) bool {
	if sf.Since != nil && s.SaleDate.Before(*sf.Since) {
		return false
	}
	if sf.Until != nil && s.SaleDate.After(*sf.Until) {
		return false
	}
	if sf.ProductID != nil && s.ProductID != *sf.ProductID {
		return false
	}
	if sf.MinAmount != nil && s.TotalAmount < *sf.MinAmount {
		return false
	}
	if sf.MaxAmount != nil && s.TotalAmount > *sf.MaxAmount {
		return false
	}
	return true
}

// Filter returns sales matching all supplied filters, newest sale first.
func (r *InMemorySaleRepository) Filter(sf SaleFilter) ([]models.Sale, int, error) {
	var filtered []models.Sale
	for _, s := range r.sales {
		if matchesSaleFilter(s, sf) {
			filtered = append(filtered, s)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].SaleDate.After(filtered[j].SaleDate)
	})

	skip := 0
	if sf.Offset != nil {
		skip = *sf.Offset
	}
	limit := defaultLimit
	if sf.Limit != nil && *sf.Limit > 0 {
		limit = *sf.Limit
	}
	start, end := pageBounds(len(filtered), skip, limit)
	return filtered[start:end], len(filtered), nil
}

// RevenueByInterval aggregates sales with sale_date in [start, end].
func (r *InMemorySaleRepository) RevenueByInterval(interval report.Interval, start, end time.Time) ([]report.RevenueBucket, error) {
	var inRange []models.Sale
	for _, s := range r.sales {
		if !s.SaleDate.Before(start) && !s.SaleDate.After(end) {
			inRange = append(inRange, s)
		}
	}
	return report.Aggregate(inRange, interval), nil
}

// RevenueBetween sums total_amount over [start, end] inclusive.
func (r *InMemorySaleRepository) RevenueBetween(start, end time.Time) (float64, error) {
	var revenue float64
	for _, s := range r.sales {
		if !s.SaleDate.Before(start) && !s.SaleDate.After(end) {
			revenue += s.TotalAmount
		}
	}
	return revenue, nil
}

func (r *InMemorySaleRepository) Clear() {
	r.sales = []models.Sale{}
	r.nextID = 1
}
