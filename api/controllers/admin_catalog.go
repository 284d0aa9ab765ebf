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

// CategoryAdmin manages categories.
type CategoryAdmin interface {
	Categories() []models.Category
	Products() []models.Product
	AddCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, id models.CategoryID) error
}

// PromotionAdmin manages promotion codes.
type PromotionAdmin interface {
	Promotions() []models.Promotion
	AddPromotion(ctx context.Context, promo models.Promotion) (models.Promotion, error)
	UpdatePromotion(ctx context.Context, promo models.Promotion) error
	DeletePromotion(ctx context.Context, id models.PromotionID) error
}

type categoryRow struct {
	models.Category
	ProductCount int `json:"productCount"`
}

type categoryRequest struct {
	Name string      `json:"name" validate:"required"`
	Seo  *seoRequest `json:"seo"`
}

type promotionRequest struct {
	Code            string `json:"code" validate:"required"`
	DiscountPercent int    `json:"discountPercent" validate:"gte=0,lte=100"`
	IsActive        bool   `json:"isActive"`
}

func (req categoryRequest) toCategory() models.Category {
	c := models.Category{Name: req.Name}
	if req.Seo != nil {
		c.Seo = &models.SeoSettings{Title: req.Seo.Title, Description: req.Seo.Description, Keywords: req.Seo.Keywords}
	}
	return c
}

func (req promotionRequest) toPromotion() models.Promotion {
	return models.Promotion{Code: req.Code, DiscountPercent: req.DiscountPercent, IsActive: req.IsActive}
}

// AdminCategoryList includes how many products reference each category name.
func AdminCategoryList(svc CategoryAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := svc.Products()
		categories := svc.Categories()
		rows := make([]categoryRow, 0, len(categories))
		for _, c := range categories {
			rows = append(rows, categoryRow{Category: c, ProductCount: views.CategoryProductCount(products, c.Name)})
		}
		responses.WriteSuccess(w, rows)
	}
}

func AdminCategoryCreate(svc CategoryAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req categoryRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		created, err := svc.AddCategory(ctx, req.toCategory())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminCategoryUpdate(svc CategoryAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "categoryId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var req categoryRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		category := req.toCategory()
		category.ID = models.CategoryID(id)
		if err := svc.UpdateCategory(ctx, category); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, category)
	}
}

func AdminCategoryDelete(svc CategoryAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "categoryId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.DeleteCategory(ctx, models.CategoryID(id)); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func AdminPromotionList(svc PromotionAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Promotions())
	}
}

func AdminPromotionCreate(svc PromotionAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req promotionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		created, err := svc.AddPromotion(ctx, req.toPromotion())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminPromotionUpdate(svc PromotionAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "promotionId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var req promotionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		promo := req.toPromotion()
		promo.ID = models.PromotionID(id)
		if err := svc.UpdatePromotion(ctx, promo); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, promo)
	}
}

func AdminPromotionDelete(svc PromotionAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "promotionId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.DeletePromotion(ctx, models.PromotionID(id)); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
