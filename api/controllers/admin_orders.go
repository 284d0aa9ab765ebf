package controllers

import (
	"context"
	"net/http"

	"github.com/zarnosh/My-E-comerce-Store/api/responses"
	"github.com/zarnosh/My-E-comerce-Store/api/validators"
	"github.com/zarnosh/My-E-comerce-Store/internal/views"
	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// OrderAdmin manages orders and customers.
type OrderAdmin interface {
	Orders() []models.Order
	Users() []models.User
	UpdateOrderStatus(ctx context.Context, id models.OrderID, status enums.OrderStatus) error
	ToggleUserBlockedStatus(ctx context.Context, id models.UserID) (bool, error)
}

type orderRow struct {
	models.Order
	CustomerEmail string `json:"customerEmail"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Shipped Delivered Cancelled"`
}

func AdminOrderList(svc OrderAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users := svc.Users()
		orders := svc.Orders()
		rows := make([]orderRow, 0, len(orders))
		for _, o := range orders {
			rows = append(rows, orderRow{Order: o, CustomerEmail: views.OrderOwnerEmail(users, o.UserID)})
		}
		responses.WriteSuccess(w, rows)
	}
}

func AdminOrderStatus(svc OrderAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "orderId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var req orderStatusRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		status, err := enums.ParseOrderStatus(req.Status)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status"))
			return
		}
		if err := svc.UpdateOrderStatus(ctx, models.OrderID(id), status); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": id, "status": status})
	}
}

func AdminUserList(svc OrderAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Users())
	}
}

// AdminUserToggleBlock flips the blocked flag and returns the new value.
func AdminUserToggleBlock(svc OrderAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		blocked, err := svc.ToggleUserBlockedStatus(ctx, models.UserID(id))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": id, "isBlocked": blocked})
	}
}
