package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingPlan is a standalone subscription tier independent from individual
// course pricing. Multi-month prices are derived from the monthly price
// unless an explicit override is stored.
type PricingPlan struct {
	ID                   string              `db:"id" json:"id"`
	Name                 string              `db:"name" json:"name"`
	Price                decimal.Decimal     `db:"price" json:"price"`
	Currency             string              `db:"currency" json:"currency"`
	BillingPeriod        string              `db:"billing_period" json:"billing_period"`
	ClassesPerWeek       int                 `db:"classes_per_week" json:"classes_per_week"`
	ClassesPerMonth      int                 `db:"classes_per_month" json:"classes_per_month"`
	StudentsEnrolled     int                 `db:"students_enrolled" json:"students_enrolled"`
	Popular              bool                `db:"popular" json:"popular"`
	SixMonthDiscount     int                 `db:"six_month_discount" json:"six_month_discount"`
	TwelveMonthDiscount  int                 `db:"twelve_month_discount" json:"twelve_month_discount"`
	SixMonthPriceFixed   decimal.NullDecimal `db:"six_month_price" json:"-"`
	TwelveMonthPriceFixed decimal.NullDecimal `db:"twelve_month_price" json:"-"`
	Active               bool                `db:"active" json:"active"`
	CreatedAt            time.Time           `db:"created_at" json:"created_at"`
}

// SixMonthPrice returns the discounted six month total. A stored override
// takes precedence over the computed value.
func (p *PricingPlan) SixMonthPrice() decimal.Decimal {
	if p.SixMonthPriceFixed.Valid {
		return p.SixMonthPriceFixed.Decimal
	}
	return multiMonthPrice(p.Price, 6, p.SixMonthDiscount)
}

// TwelveMonthPrice returns the discounted twelve month total. A stored
// override takes precedence over the computed value.
func (p *PricingPlan) TwelveMonthPrice() decimal.Decimal {
	if p.TwelveMonthPriceFixed.Valid {
		return p.TwelveMonthPriceFixed.Decimal
	}
	return multiMonthPrice(p.Price, 12, p.TwelveMonthDiscount)
}

// multiMonthPrice computes base * months * (1 - discount/100) exactly.
func multiMonthPrice(base decimal.Decimal, months int, discountPercent int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(discountPercent)).Div(decimal.NewFromInt(100)))
	return base.Mul(decimal.NewFromInt(int64(months))).Mul(factor)
}

// PricingPlanView is the catalog response shape with derived totals.
type PricingPlanView struct {
	PricingPlan
	SixMonthTotal    decimal.Decimal `json:"six_month_price"`
	TwelveMonthTotal decimal.Decimal `json:"twelve_month_price"`
}

// View materialises the derived totals for API responses.
func (p PricingPlan) View() PricingPlanView {
	return PricingPlanView{
		PricingPlan:      p,
		SixMonthTotal:    p.SixMonthPrice(),
		TwelveMonthTotal: p.TwelveMonthPrice(),
	}
}
