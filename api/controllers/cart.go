package controllers

import (
	"context"
	"net/http"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/zarnosh/My-E-comerce-Store/api/responses"
	"github.com/zarnosh/My-E-comerce-Store/api/validators"
	"github.com/zarnosh/My-E-comerce-Store/internal/views"
	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
	"github.com/zarnosh/My-E-comerce-Store/pkg/money"
)

const msgAddedToCart = "Added to cart!"

// CartService is the cart store.
type CartService interface {
	AddToCart(ctx context.Context, product models.Product, quantity int, size, color string) error
	RemoveFromCart(ctx context.Context, productID models.ProductID, size, color string) error
	UpdateQuantity(ctx context.Context, productID models.ProductID, size, color string, quantity int) error
	ClearCart(ctx context.Context)
	Items() []models.CartItem
	Count() int
	Total() decimal.Decimal
}

// ProductLookup resolves the product snapshot to put in the cart and shows the
// confirmation toast.
type ProductLookup interface {
	Product(id models.ProductID) (models.Product, error)
	ShowToast(message string, kind enums.ToastKind)
}

type cartView struct {
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
}

type updateCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type cartLineQuery struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
}

func snapshot(svc CartService) cartView {
	return cartView{Items: svc.Items(), Count: svc.Count(), Total: money.Float(svc.Total())}
}

func CartGet(svc CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, snapshot(svc))
	}
}

// CartAddItem adds a variant of an in-stock product. The quantity is clamped
// to what is in stock and the variant must be one the product offers.
func CartAddItem(svc CartService, products ProductLookup, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req addCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		product, err := products.Product(models.ProductID(req.ProductID))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if product.Stock <= 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product is out of stock"))
			return
		}
		details := map[string]string{}
		if !slices.Contains(product.Sizes, req.Size) {
			details["size"] = "is not offered for this product"
		}
		if !slices.Contains(product.Colors, req.Color) {
			details["color"] = "is not offered for this product"
		}
		if len(details) > 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid selection").WithDetails(details))
			return
		}

		quantity := views.ClampQuantity(req.Quantity, product.Stock)
		if err := svc.AddToCart(ctx, product, quantity, req.Size, req.Color); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		products.ShowToast(msgAddedToCart, enums.ToastKindSuccess)
		responses.WriteSuccessStatus(w, http.StatusCreated, snapshot(svc))
	}
}

// CartUpdateItem replaces a line's quantity; zero or less removes the line.
func CartUpdateItem(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.UpdateQuantity(ctx, models.ProductID(req.ProductID), req.Size, req.Color, req.Quantity); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot(svc))
	}
}

// CartRemoveItem takes the line identity from the query string.
func CartRemoveItem(svc CartService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()
		line := cartLineQuery{ProductID: q.Get("productId"), Size: q.Get("size"), Color: q.Get("color")}
		if err := validators.Struct(line); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.RemoveFromCart(ctx, models.ProductID(line.ProductID), line.Size, line.Color); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot(svc))
	}
}

func CartClear(svc CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearCart(r.Context())
		responses.WriteSuccess(w, snapshot(svc))
	}
}
