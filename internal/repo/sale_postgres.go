package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/ecommerce-admin/internal/models"
	"github.com/rogerio-castellano/ecommerce-admin/internal/report"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

const defaultLimit = 100

func (r *PostgresSaleRepository) Create(s models.Sale) (models.Sale, error) {
	query := `INSERT INTO sales (product_id, quantity, unit_price, total_amount, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		s.ProductID, s.Quantity, s.UnitPrice, s.TotalAmount, s.SaleDate, time.Now().UTC()).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return models.Sale{}, fmt.Errorf("failed to insert sale: %w", err)
	}
	return s, nil
}

// Filter returns sales matching all supplied filters, newest sale first.
func (r *PostgresSaleRepository) Filter(sf SaleFilter) ([]models.Sale, int, error) {
	whereClause, args := buildSaleWhereClause(sf)

	total, err := r.getTotal(whereClause, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	query, queryArgs := buildSaleMainQuery(whereClause, args, sf)
	sales, err := r.executeQuery(query, queryArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return sales, total, nil
}

// buildSaleWhereClause constructs the WHERE clause and returns arguments
func buildSaleWhereClause(sf SaleFilter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	argIndex := 1

	if sf.Since != nil {
		whereClause += fmt.Sprintf(" AND sale_date >= $%d", argIndex)
		args = append(args, *sf.Since)
		argIndex++
	}
	if sf.Until != nil {
		whereClause += fmt.Sprintf(" AND sale_date <= $%d", argIndex)
		args = append(args, *sf.Until)
		argIndex++
	}
	if sf.ProductID != nil {
		whereClause += fmt.Sprintf(" AND product_id = $%d", argIndex)
		args = append(args, *sf.ProductID)
		argIndex++
	}
	if sf.MinAmount != nil {
		whereClause += fmt.Sprintf(" AND total_amount >= $%d", argIndex)
		args = append(args, *sf.MinAmount)
		argIndex++
	}
	if sf.MaxAmount != nil {
		whereClause += fmt.Sprintf(" AND total_amount <= $%d", argIndex)
		args = append(args, *sf.MaxAmount)
	}

	return whereClause, args
}

// buildSaleMainQuery constructs the main SELECT query with pagination
func buildSaleMainQuery(whereClause string, baseArgs []any, sf SaleFilter) (string, []any) {
	query := fmt.Sprintf(
		"SELECT id, product_id, quantity, unit_price, total_amount, sale_date, created_at FROM sales %s ORDER BY sale_date DESC",
		whereClause)
	args := make([]any, len(baseArgs))
	copy(args, baseArgs)
	argIndex := len(baseArgs) + 1

	limit := defaultLimit
	if sf.Limit != nil && *sf.Limit > 0 {
		limit = *sf.Limit
	}
	query += fmt.Sprintf(" LIMIT $%d", argIndex)
	args = append(args, limit)
	argIndex++

	if sf.Offset != nil && *sf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *sf.Offset)
	}

	return query, args
}

func (r *PostgresSaleRepository) getTotal(whereClause string, args []any) (int, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM sales %s", whereClause)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresSaleRepository) executeQuery(query string, args []any) ([]models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.TotalAmount, &s.SaleDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// truncUnit maps an interval onto the date_trunc unit used for grouping.
// date_trunc('week', ...) starts weeks on Monday, which agrees with the
// ISO week numbering used by report.BucketLabel.
func truncUnit(interval report.Interval) string {
	switch interval {
	case report.Daily:
		return "day"
	case report.Weekly:
		return "week"
	case report.Monthly:
		return "month"
	default:
		return "year"
	}
}

// RevenueByInterval groups sales in [start, end] by date_trunc and labels
// each bucket with report.BucketLabel from the bucket start, so the label
// convention is identical across storage backends.
func (r *PostgresSaleRepository) RevenueByInterval(interval report.Interval, start, end time.Time) ([]report.RevenueBucket, error) {
	query := fmt.Sprintf(`SELECT date_trunc('%s', sale_date) AS bucket,
			SUM(total_amount) AS revenue, COUNT(*) AS total_sales
		FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2
		GROUP BY bucket
		ORDER BY bucket`, truncUnit(interval))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue: %w", err)
	}
	defer rows.Close()

	var buckets []report.RevenueBucket
	for rows.Next() {
		var bucketStart time.Time
		var b report.RevenueBucket
		if err := rows.Scan(&bucketStart, &b.Revenue, &b.TotalSales); err != nil {
			return nil, err
		}
		b.Interval = report.BucketLabel(bucketStart, interval)
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// RevenueBetween sums total_amount over [start, end] inclusive.
func (r *PostgresSaleRepository) RevenueBetween(start, end time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE sale_date >= $1 AND sale_date <= $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var revenue float64
	err := r.db.QueryRowContext(ctx, query, start, end).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return revenue, nil
}
