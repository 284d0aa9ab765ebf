package views

import (
	"slices"
	"strings"

	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// UnknownUser labels orders whose owner no longer resolves.
const UnknownUser = "Unknown User"

// WishlistProducts returns the wishlisted products in catalog order. Ids of
// deleted products are skipped.
func WishlistProducts(products []models.Product, user models.User) []models.Product {
	out := make([]models.Product, 0, len(user.Wishlist))
	for _, p := range products {
		if user.InWishlist(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// OrderHistory returns the user's orders, keeping the list order.
func OrderHistory(orders []models.Order, userID models.UserID) []models.Order {
	out := make([]models.Order, 0)
	for _, o := range orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// CategoryProductCount counts products carrying the category name.
func CategoryProductCount(products []models.Product, category string) int {
	n := 0
	for _, p := range products {
		if p.Category == category {
			n++
		}
	}
	return n
}

// OrderOwnerEmail resolves an order's user to an email.
func OrderOwnerEmail(users []models.User, userID models.UserID) string {
	idx := slices.IndexFunc(users, func(u models.User) bool { return u.ID == userID })
	if idx < 0 {
		return UnknownUser
	}
	return users[idx].Email
}

// SplitList turns "S, M ,,L" into ["S" "M" "L"].
func SplitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ClampQuantity keeps a requested quantity within [1, stock]. A sold out
// product clamps to 1 so the caller can still report the stock problem.
func ClampQuantity(quantity, stock int) int {
	if stock < 1 {
		return 1
	}
	return max(1, min(quantity, stock))
}
