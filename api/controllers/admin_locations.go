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

// LocationAdmin manages trade areas and branches.
type LocationAdmin interface {
	TradeAreas() []models.TradeArea
	AddTradeArea(ctx context.Context, area models.TradeArea) (models.TradeArea, error)
	UpdateTradeArea(ctx context.Context, area models.TradeArea) error
	DeleteTradeArea(ctx context.Context, id models.TradeAreaID) error
	Branches() []models.Branch
	AddBranch(ctx context.Context, branch models.Branch) (models.Branch, error)
	UpdateBranch(ctx context.Context, branch models.Branch) error
	DeleteBranch(ctx context.Context, id models.BranchID) error
}

// tradeAreaRequest takes cities as comma separated text.
type tradeAreaRequest struct {
	Name             string  `json:"name" validate:"required"`
	Cities           string  `json:"cities"`
	DeliveryRadiusKm float64 `json:"deliveryRadiusKm" validate:"gte=0"`
}

type branchRequest struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	ContactPhone string `json:"contactPhone"`
	TradeAreaID  string `json:"tradeAreaId" validate:"required"`
}

func (req tradeAreaRequest) toTradeArea() models.TradeArea {
	return models.TradeArea{Name: req.Name, Cities: views.SplitList(req.Cities), DeliveryRadiusKm: req.DeliveryRadiusKm}
}

func (req branchRequest) toBranch() models.Branch {
	return models.Branch{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		ContactPhone: req.ContactPhone,
		TradeAreaID:  models.TradeAreaID(req.TradeAreaID),
	}
}

func AdminTradeAreaList(svc LocationAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.TradeAreas())
	}
}

func AdminTradeAreaCreate(svc LocationAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req tradeAreaRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		created, err := svc.AddTradeArea(ctx, req.toTradeArea())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminTradeAreaUpdate(svc LocationAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "tradeAreaId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var req tradeAreaRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		area := req.toTradeArea()
		area.ID = models.TradeAreaID(id)
		if err := svc.UpdateTradeArea(ctx, area); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, area)
	}
}

// AdminTradeAreaDelete also removes the area's branches.
func AdminTradeAreaDelete(svc LocationAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "tradeAreaId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.DeleteTradeArea(ctx, models.TradeAreaID(id)); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func AdminBranchList(svc LocationAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Branches())
	}
}

func AdminBranchCreate(svc LocationAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req branchRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		created, err := svc.AddBranch(ctx, req.toBranch())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminBranchUpdate(svc LocationAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "branchId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var req branchRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		branch := req.toBranch()
		branch.ID = models.BranchID(id)
		if err := svc.UpdateBranch(ctx, branch); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, branch)
	}
}

func AdminBranchDelete(svc LocationAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "branchId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.DeleteBranch(ctx, models.BranchID(id)); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
