package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/zaalasociety/academy-api/internal/models"
)

const pricingColumns = `id, name, price, currency, billing_period, classes_per_week, classes_per_month, students_enrolled, popular, six_month_discount, twelve_month_discount, six_month_price, twelve_month_price, active, created_at`

// PricingRepository provides database access for pricing plans.
type PricingRepository struct {
	db *sqlx.DB
}

// NewPricingRepository creates a new instance of PricingRepository.
func NewPricingRepository(db *sqlx.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

// ListActive returns active plans ordered by monthly price.
func (r *PricingRepository) ListActive(ctx context.Context) ([]models.PricingPlan, error) {
	query := fmt.Sprintf(`SELECT %s FROM pricing_plans WHERE active = TRUE ORDER BY price`, pricingColumns)
	var plans []models.PricingPlan
	if err := r.db.SelectContext(ctx, &plans, query); err != nil {
		return nil, fmt.Errorf("list pricing plans: %w", err)
	}
	return plans, nil
}

// FindByID returns a plan by identifier.
func (r *PricingRepository) FindByID(ctx context.Context, id string) (*models.PricingPlan, error) {
	query := fmt.Sprintf(`SELECT %s FROM pricing_plans WHERE id = $1 LIMIT 1`, pricingColumns)
	var plan models.PricingPlan
	if err := r.db.GetContext(ctx, &plan, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find pricing plan by id: %w", err)
	}
	return &plan, nil
}

// Create inserts a pricing plan (seeding/admin).
func (r *PricingRepository) Create(ctx context.Context, plan *models.PricingPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO pricing_plans (id, name, price, currency, billing_period, classes_per_week, classes_per_month, students_enrolled, popular, six_month_discount, twelve_month_discount, six_month_price, twelve_month_price, active, created_at)
		VALUES (:id, :name, :price, :currency, :billing_period, :classes_per_week, :classes_per_month, :students_enrolled, :popular, :six_month_discount, :twelve_month_discount, :six_month_price, :twelve_month_price, :active, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, plan); err != nil {
		return fmt.Errorf("create pricing plan: %w", err)
	}
	return nil
}

// DeleteAll clears the table ahead of a reseed.
func (r *PricingRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pricing_plans`); err != nil {
		return fmt.Errorf("delete pricing plans: %w", err)
	}
	return nil
}
