package controllers

import (
	"context"
	"net/http"

	"github.com/zarnosh/My-E-comerce-Store/api/responses"
	"github.com/zarnosh/My-E-comerce-Store/api/validators"
	"github.com/zarnosh/My-E-comerce-Store/internal/views"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// SettingsAdmin edits the storefront filter toggles.
type SettingsAdmin interface {
	FilterSettings() models.FilterSettings
	UpdateFilterSettings(ctx context.Context, settings models.FilterSettings)
}

// ReportSource is the data the admin reports are derived from.
type ReportSource interface {
	Products() []models.Product
	Users() []models.User
	Orders() []models.Order
}

type filterSettingsRequest struct {
	Price *bool `json:"price" validate:"required"`
	Color *bool `json:"color" validate:"required"`
	Size  *bool `json:"size" validate:"required"`
}

func AdminFilterSettingsGet(svc SettingsAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.FilterSettings())
	}
}

func AdminFilterSettingsUpdate(svc SettingsAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req filterSettingsRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		svc.UpdateFilterSettings(ctx, models.FilterSettings{Price: *req.Price, Color: *req.Color, Size: *req.Size})
		responses.WriteSuccess(w, svc.FilterSettings())
	}
}

func AdminReports(svc ReportSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, views.BuildReport(svc.Orders()))
	}
}

func AdminDashboard(svc ReportSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, views.BuildDashboard(svc.Products(), svc.Users(), svc.Orders()))
	}
}
