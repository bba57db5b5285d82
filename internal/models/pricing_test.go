package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPricingPlanSixMonthPrice(t *testing.T) {
	plan := PricingPlan{
		Price:            decimal.RequireFromString("35.00"),
		SixMonthDiscount: 7,
	}

	// 35.00 * 6 * 0.93 = 195.30 with no rounding drift.
	assert.True(t, plan.SixMonthPrice().Equal(decimal.RequireFromString("195.30")),
		"got %s", plan.SixMonthPrice())
}

func TestPricingPlanTwelveMonthPrice(t *testing.T) {
	plan := PricingPlan{
		Price:               decimal.RequireFromString("45.00"),
		TwelveMonthDiscount: 10,
	}

	// 45.00 * 12 * 0.90 = 486.00 exactly.
	assert.True(t, plan.TwelveMonthPrice().Equal(decimal.RequireFromString("486.00")),
		"got %s", plan.TwelveMonthPrice())
}

func TestPricingPlanStoredOverrideWins(t *testing.T) {
	plan := PricingPlan{
		Price:            decimal.RequireFromString("35.00"),
		SixMonthDiscount: 7,
		SixMonthPriceFixed: decimal.NullDecimal{
			Decimal: decimal.RequireFromString("180.00"),
			Valid:   true,
		},
	}

	assert.True(t, plan.SixMonthPrice().Equal(decimal.RequireFromString("180.00")))
}

func TestPricingPlanZeroDiscount(t *testing.T) {
	plan := PricingPlan{Price: decimal.RequireFromString("25.00")}

	assert.True(t, plan.SixMonthPrice().Equal(decimal.RequireFromString("150.00")))
	assert.True(t, plan.TwelveMonthPrice().Equal(decimal.RequireFromString("300.00")))
}

func TestPricingPlanView(t *testing.T) {
	plan := PricingPlan{
		Price:               decimal.RequireFromString("35.00"),
		SixMonthDiscount:    7,
		TwelveMonthDiscount: 10,
	}

	view := plan.View()
	assert.True(t, view.SixMonthTotal.Equal(decimal.RequireFromString("195.30")))
	assert.True(t, view.TwelveMonthTotal.Equal(decimal.RequireFromString("378.00")))
}
