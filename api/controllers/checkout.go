package controllers

import (
	"context"
	"net/http"

	"github.com/zarnosh/My-E-comerce-Store/api/responses"
	"github.com/zarnosh/My-E-comerce-Store/api/validators"
	"github.com/zarnosh/My-E-comerce-Store/internal/checkout"
	"github.com/zarnosh/My-E-comerce-Store/internal/views"
	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// CheckoutService places orders from the cart.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, in checkout.Input) (*checkout.Pending, error)
}

// OrderReader lists orders for the session user.
type OrderReader interface {
	CurrentUser() (models.User, bool)
	Orders() []models.Order
}

// PromotionLookup resolves promotion codes.
type PromotionLookup interface {
	ActivePromotion(code string) (models.Promotion, error)
}

type shippingAddressRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
}

type checkoutRequest struct {
	ShippingAddress shippingAddressRequest `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required,oneof=COD Online"`
}

// CheckoutPlaceOrder places the order and holds the response until the
// processing delay has cleared the cart. A client that disconnects first
// leaves the cart as it was.
func CheckoutPlaceOrder(svc CheckoutService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req checkoutRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		method, err := enums.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method"))
			return
		}

		pending, err := svc.PlaceOrder(ctx, checkout.Input{
			ShippingAddress: models.ShippingAddress(req.ShippingAddress),
			PaymentMethod:   method,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := pending.Wait(ctx); err != nil {
			logg.Warn(logg.WithOrderID(ctx, string(pending.Order.ID)), "checkout.client_gone")
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, pending.Order)
	}
}

// OrderHistory lists the session user's orders, newest first.
func OrderHistory(svc OrderReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := svc.CurrentUser()
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required to view orders"))
			return
		}
		responses.WriteSuccess(w, views.OrderHistory(svc.Orders(), user.ID))
	}
}

func PromotionGet(svc PromotionLookup, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		code, err := pathParam(r, "code")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		promo, err := svc.ActivePromotion(code)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, promo)
	}
}
