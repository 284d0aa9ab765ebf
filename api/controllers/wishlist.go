package controllers

import (
	"context"
	"net/http"

	"github.com/zarnosh/My-E-comerce-Store/api/responses"
	"github.com/zarnosh/My-E-comerce-Store/internal/views"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// WishlistService toggles and lists the session user's wishlist.
type WishlistService interface {
	CurrentUser() (models.User, bool)
	Products() []models.Product
	ToggleWishlist(ctx context.Context, productID models.ProductID) (bool, error)
}

// WishlistList returns the wishlisted products in catalog order.
func WishlistList(svc WishlistService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := svc.CurrentUser()
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required to view the wishlist"))
			return
		}
		responses.WriteSuccess(w, views.WishlistProducts(svc.Products(), user))
	}
}

// WishlistToggle adds or removes the product and reports the new membership.
func WishlistToggle(svc WishlistService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		added, err := svc.ToggleWishlist(ctx, models.ProductID(id))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"productId": id, "inWishlist": added})
	}
}
