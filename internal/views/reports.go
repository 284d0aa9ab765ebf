package views

import (
	"github.com/shopspring/decimal"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
	"github.com/zarnosh/My-E-comerce-Store/pkg/money"
)

// SalesLabelLayout formats sales series labels like "Oct 26".
const SalesLabelLayout = "Jan 2"

// SalesPoint is one bar of the dashboard sales chart.
type SalesPoint struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// Report is the admin reports screen.
type Report struct {
	TotalRevenue      float64         `json:"totalRevenue"`
	TotalOrders       int             `json:"totalOrders"`
	AverageOrderValue float64         `json:"averageOrderValue"`
	Heatmap           []CityAggregate `json:"heatmap"`
}

// Dashboard is the admin landing screen.
type Dashboard struct {
	TotalRevenue   float64      `json:"totalRevenue"`
	TotalOrders    int          `json:"totalOrders"`
	TotalCustomers int          `json:"totalCustomers"`
	LowStockCount  int          `json:"lowStockCount"`
	Sales          []SalesPoint `json:"sales"`
}

func revenue(orders []models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(decimal.NewFromFloat(o.Total))
	}
	return total
}

// TotalRevenue sums order totals.
func TotalRevenue(orders []models.Order) float64 {
	return money.Float(revenue(orders))
}

// AverageOrderValue is revenue / max(order count, 1).
func AverageOrderValue(orders []models.Order) float64 {
	return money.Ratio(revenue(orders), len(orders))
}

// SalesSeries emits one point per order, oldest list entry first. The order
// list is kept newest first, so this reverses it.
func SalesSeries(orders []models.Order) []SalesPoint {
	points := make([]SalesPoint, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		points = append(points, SalesPoint{
			Label: orders[i].Date.Format(SalesLabelLayout),
			Total: orders[i].Total,
		})
	}
	return points
}

func BuildReport(orders []models.Order) Report {
	return Report{
		TotalRevenue:      TotalRevenue(orders),
		TotalOrders:       len(orders),
		AverageOrderValue: AverageOrderValue(orders),
		Heatmap:           OrdersByCity(orders),
	}
}

// BuildDashboard counts customers by role and low stock as anything under the
// low stock threshold, including sold out products.
func BuildDashboard(products []models.Product, users []models.User, orders []models.Order) Dashboard {
	d := Dashboard{
		TotalRevenue: TotalRevenue(orders),
		TotalOrders:  len(orders),
		Sales:        SalesSeries(orders),
	}
	for _, u := range users {
		if u.Role == enums.UserRoleCustomer {
			d.TotalCustomers++
		}
	}
	for _, p := range products {
		if p.Stock < enums.LowStockThreshold {
			d.LowStockCount++
		}
	}
	return d
}
