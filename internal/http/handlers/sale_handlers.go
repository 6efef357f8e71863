package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	models "github.com/rogerio-castellano/ecommerce-admin/internal/models"
	"github.com/rogerio-castellano/ecommerce-admin/internal/report"
	repo "github.com/rogerio-castellano/ecommerce-admin/internal/repo"
)

const revenueCachePrefix = "revenue:"

// CreateSaleHandler godoc
// @Summary Record a sale
// @Description Records a sale for an existing product; total_amount is stored as supplied
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} SaleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSale(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	if _, err := productRepo.GetByID(req.ProductID); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	created, err := saleRepo.Create(models.Sale{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		TotalAmount: req.TotalAmount,
		SaleDate:    req.SaleDate,
	})
	if err != nil {
		log.Printf("could not create sale: %v", err)
		http.Error(w, "could not create sale", http.StatusInternalServerError)
		return
	}

	if reportCache != nil {
		if err := reportCache.DeletePrefix(revenueCachePrefix); err != nil {
			log.Printf("could not invalidate revenue cache: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saleResponse(created))
}

// GetSalesHandler godoc
// @Summary List sales with optional filters
// @Description All supplied filters apply conjunctively; results are ordered by sale_date descending
// @Tags sales
// @Produce json
// @Param skip query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Param start_date query string false "Filter sales from this timestamp (RFC3339)"
// @Param end_date query string false "Filter sales until this timestamp (RFC3339)"
// @Param product_id query int false "Filter by product"
// @Param min_amount query number false "Minimum total amount"
// @Param max_amount query number false "Maximum total amount"
// @Success 200 {object} SalesSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	skip, limit, err := parseSkipLimit(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	since, err := parseTimeParam(q, "start_date")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	until, err := parseTimeParam(q, "end_date")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := repo.SaleFilter{
		Since:     since,
		Until:     until,
		ProductID: parseIntPtr(q.Get("product_id")),
		MinAmount: parseFloatPtr(q.Get("min_amount")),
		MaxAmount: parseFloatPtr(q.Get("max_amount")),
		Offset:    &skip,
		Limit:     &limit,
	}

	sales, total, err := saleRepo.Filter(filter)
	if err != nil {
		log.Printf("could not filter sales: %v", err)
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}

	resp := SalesSearchResult{
		Data: make([]SaleResponse, len(sales)),
		Meta: Meta{TotalCount: total},
	}
	for i, s := range sales {
		resp.Data[i] = saleResponse(s)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetRevenueByIntervalHandler godoc
// @Summary Revenue aggregated by time interval
// @Description Buckets sales into daily, weekly, monthly or yearly intervals and sums revenue per bucket; only buckets with at least one sale are returned
// @Tags sales
// @Produce json
// @Param interval query string true "Aggregation interval (daily, weekly, monthly, yearly)"
// @Param start_date query string false "Range start (RFC3339); defaults per interval"
// @Param end_date query string false "Range end (RFC3339); defaults to now"
// @Success 200 {array} report.RevenueBucket
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /sales/revenue [get]
func GetRevenueByIntervalHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	interval, err := report.ParseInterval(q.Get("interval"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	startParam, err := parseTimeParam(q, "start_date")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	endParam, err := parseTimeParam(q, "end_date")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	end := time.Now().UTC()
	if endParam != nil {
		end = *endParam
	}
	start := report.DefaultStart(interval, end)
	if startParam != nil {
		start = *startParam
	}

	cacheKey := fmt.Sprintf("%s%s:%d:%d", revenueCachePrefix, interval, start.Unix(), end.Unix())
	if reportCache != nil {
		var cached []report.RevenueBucket
		if hit, err := reportCache.GetJSON(cacheKey, &cached); err == nil && hit {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(cached)
			return
		}
	}

	buckets, err := saleRepo.RevenueByInterval(interval, start, end)
	if err != nil {
		log.Printf("could not aggregate revenue: %v", err)
		http.Error(w, "could not aggregate revenue", http.StatusInternalServerError)
		return
	}
	if buckets == nil {
		buckets = []report.RevenueBucket{}
	}

	if reportCache != nil {
		if err := reportCache.SetJSON(cacheKey, buckets, reportCacheTTL); err != nil {
			log.Printf("could not cache revenue report: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(buckets)
}

// CompareRevenueHandler godoc
// @Summary Compare revenue between two periods
// @Description Sums revenue over the current and previous period and reports the percentage change; the previous period defaults to the range of the same length ending one day before the current one
// @Tags sales
// @Produce json
// @Param current_start query string true "Current period start (RFC3339)"
// @Param current_end query string true "Current period end (RFC3339)"
// @Param previous_start query string false "Previous period start (RFC3339)"
// @Param previous_end query string false "Previous period end (RFC3339)"
// @Success 200 {object} report.Comparison
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /sales/revenue/compare [get]
func CompareRevenueHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	currentStart, err := parseTimeParam(q, "current_start")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	currentEnd, err := parseTimeParam(q, "current_end")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if currentStart == nil || currentEnd == nil {
		http.Error(w, "current_start and current_end are required", http.StatusBadRequest)
		return
	}

	previousStartParam, err := parseTimeParam(q, "previous_start")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	previousEndParam, err := parseTimeParam(q, "previous_end")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if (previousStartParam == nil) != (previousEndParam == nil) {
		http.Error(w, "previous_start and previous_end must be supplied together", http.StatusBadRequest)
		return
	}

	previousStart, previousEnd := report.PreviousPeriod(*currentStart, *currentEnd)
	if previousStartParam != nil {
		previousStart, previousEnd = *previousStartParam, *previousEndParam
	}

	currentRevenue, err := saleRepo.RevenueBetween(*currentStart, *currentEnd)
	if err != nil {
		log.Printf("could not sum current period revenue: %v", err)
		http.Error(w, "could not compare revenue", http.StatusInternalServerError)
		return
	}
	previousRevenue, err := saleRepo.RevenueBetween(previousStart, previousEnd)
	if err != nil {
		log.Printf("could not sum previous period revenue: %v", err)
		http.Error(w, "could not compare revenue", http.StatusInternalServerError)
		return
	}

	comparison := report.Compare(*currentStart, *currentEnd, currentRevenue,
		previousStart, previousEnd, previousRevenue)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comparison)
}
