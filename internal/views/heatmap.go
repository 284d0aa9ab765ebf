package views

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
	"github.com/zarnosh/My-E-comerce-Store/pkg/money"
)

// IntensityBands is the number of discrete heatmap colors.
const IntensityBands = 5

// CityAggregate is one heatmap cell.
type CityAggregate struct {
	City       string  `json:"city"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
	// Intensity is a band in [1, IntensityBands].
	Intensity int `json:"intensity"`
}

// OrdersByCity groups orders by shipping city, most orders first. Cities with
// the same count keep the order in which they were first seen.
func OrdersByCity(orders []models.Order) []CityAggregate {
	type bucket struct {
		city  string
		count int
		total decimal.Decimal
	}
	var buckets []*bucket
	byCity := map[string]*bucket{}
	for _, o := range orders {
		city := o.ShippingAddress.City
		b, ok := byCity[city]
		if !ok {
			b = &bucket{city: city, total: decimal.Zero}
			byCity[city] = b
			buckets = append(buckets, b)
		}
		b.count++
		b.total = b.total.Add(decimal.NewFromFloat(o.Total))
	}

	slices.SortStableFunc(buckets, func(a, b *bucket) int { return b.count - a.count })

	maxCount := 0
	if len(buckets) > 0 {
		maxCount = buckets[0].count
	}
	out := make([]CityAggregate, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, CityAggregate{
			City:       b.city,
			Count:      b.count,
			TotalValue: money.Float(b.total),
			Intensity:  intensity(b.count, maxCount),
		})
	}
	return out
}

// intensity maps count/max onto 1..5, rounding halves up.
func intensity(count, maxCount int) int {
	if maxCount <= 0 {
		return 1
	}
	return int(math.Floor(float64(count)/float64(maxCount)*4+0.5)) + 1
}
