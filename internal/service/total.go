package service

import (
	"github.com/shopspring/decimal"

	"dashboard-services/internal/entities"
)

// OrderTotal sums quantity × price over all items in exact decimal
// arithmetic and rounds the final sum to two decimal places, half away from
// zero. Rounding happens once, after summation: rounding each line first
// can produce a different total for the same inputs.
func OrderTotal(items []entities.LineItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	total, _ := sum.Round(2).Float64()
	return total
}
