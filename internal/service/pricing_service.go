package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zaalasociety/academy-api/internal/models"
	appErrors "github.com/zaalasociety/academy-api/pkg/errors"
)

const cacheKeyPricingPlans = "catalog:pricing-plans"

type pricingStore interface {
	ListActive(ctx context.Context) ([]models.PricingPlan, error)
	FindByID(ctx context.Context, id string) (*models.PricingPlan, error)
}

// PricingService serves subscription tiers with derived multi-month totals.
type PricingService struct {
	plans pricingStore
	cache *CacheService
}

// NewPricingService constructs a PricingService instance.
func NewPricingService(plans pricingStore, cache *CacheService) *PricingService {
	return &PricingService{plans: plans, cache: cache}
}

// ListActive returns active plans ordered by monthly price, with the six and
// twelve month totals already computed.
func (s *PricingService) ListActive(ctx context.Context) ([]models.PricingPlanView, error) {
	var cached []models.PricingPlanView
	if s.cache.Get(ctx, cacheKeyPricingPlans, &cached) {
		return cached, nil
	}

	plans, err := s.plans.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list pricing plans")
	}

	views := make([]models.PricingPlanView, 0, len(plans))
	for _, plan := range plans {
		views = append(views, plan.View())
	}

	s.cache.Set(ctx, cacheKeyPricingPlans, views, 0)
	return views, nil
}

// Get returns one plan with derived totals.
func (s *PricingService) Get(ctx context.Context, id string) (*models.PricingPlanView, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "pricing plan not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch pricing plan")
	}
	view := plan.View()
	return &view, nil
}
