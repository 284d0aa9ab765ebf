package models

import (
	"slices"
	"strings"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
)

type User struct {
	ID    UserID         `json:"id"`
	Email string         `json:"email"`
	Role  enums.UserRole `json:"role"`
	// Password is plaintext seed data and never leaves the process.
	Password string `json:"-"`
	// Orders is informational only; order history is derived from Order.UserID.
	Orders    []OrderID   `json:"orders"`
	Wishlist  []ProductID `json:"wishlist"`
	IsBlocked bool        `json:"isBlocked"`
}

func (u User) Clone() User {
	out := u
	out.Orders = slices.Clone(u.Orders)
	out.Wishlist = slices.Clone(u.Wishlist)
	return out
}

// InWishlist reports whether the product id is on the user's wishlist.
func (u User) InWishlist(id ProductID) bool {
	return slices.Contains(u.Wishlist, id)
}

// DisplayName is the local part of the email, used as the review author name.
func (u User) DisplayName() string {
	name, _, _ := strings.Cut(u.Email, "@")
	return name
}
