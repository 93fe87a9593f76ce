package usecase

import (
	"math"
	"strings"

	"mechmarket/internal/usecase/interfaces"
)

// CategoryRateCommission computes the platform fee from a category->rate
// table. Injected wherever escrow needs a commission split so the table can
// be swapped without touching the engines.
type CategoryRateCommission struct {
	rates       map[string]float64
	defaultRate float64
}

var _ interfaces.ICommissionPolicy = (*CategoryRateCommission)(nil)

// NewDefaultCommissionPolicy returns the marketplace's standard rate table.
func NewDefaultCommissionPolicy() *CategoryRateCommission {
	return &CategoryRateCommission{
		rates: map[string]float64{
			"towing":      0.10,
			"tires":       0.12,
			"battery":     0.12,
			"diagnostics": 0.18,
			"brakes":      0.15,
			"engine":      0.15,
			"electrical":  0.15,
		},
		defaultRate: 0.15,
	}
}

// NewCommissionPolicy builds a policy from an explicit rate table.
func NewCommissionPolicy(rates map[string]float64, defaultRate float64) *CategoryRateCommission {
	return &CategoryRateCommission{rates: rates, defaultRate: defaultRate}
}

// PlatformFee returns the fee rounded to cents.
func (c *CategoryRateCommission) PlatformFee(amount float64, category string) float64 {
	if amount <= 0 {
		return 0
	}
	rate, ok := c.rates[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		rate = c.defaultRate
	}
	return math.Round(amount*rate*100) / 100
}
