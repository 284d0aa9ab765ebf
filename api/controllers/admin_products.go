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

// ProductAdmin is the product management surface of the entity store.
type ProductAdmin interface {
	Products() []models.Product
	Product(id models.ProductID) (models.Product, error)
	AddProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) error
	DeleteProduct(ctx context.Context, id models.ProductID) error
	DeleteMultipleProducts(ctx context.Context, ids []models.ProductID) (int, error)
	UpdateProductStock(ctx context.Context, id models.ProductID, stock int) error
}

type seoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// productRequest mirrors the admin product form: sizes and colors arrive as
// comma separated text.
type productRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Price       float64     `json:"price" validate:"gte=0"`
	Category    string      `json:"category" validate:"required"`
	ImageURL    string      `json:"imageUrl"`
	Sizes       string      `json:"sizes"`
	Colors      string      `json:"colors"`
	Stock       *int        `json:"stock" validate:"required,gte=0"`
	Seo         *seoRequest `json:"seo"`
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type stockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

func (req productRequest) toProduct() models.Product {
	p := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Sizes:       views.SplitList(req.Sizes),
		Colors:      views.SplitList(req.Colors),
		Stock:       *req.Stock,
	}
	if req.Seo != nil {
		p.Seo = &models.SeoSettings{Title: req.Seo.Title, Description: req.Seo.Description, Keywords: req.Seo.Keywords}
	}
	return p
}

// AdminProductList serves one page of the filtered and sorted product table.
func AdminProductList(svc ProductAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		filter := views.ProductFilter{Search: q.Get("search"), Category: q.Get("category")}
		if raw := q.Get("stock"); raw != "" {
			status, err := enums.ParseStockStatus(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid stock filter"))
				return
			}
			filter.Stock = status
		}

		sort := views.ProductSort{Key: enums.ProductSortName, Direction: enums.SortAscending}
		if raw := q.Get("sort"); raw != "" {
			key, err := enums.ParseProductSortKey(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key"))
				return
			}
			sort.Key = key
		}
		if raw := q.Get("direction"); raw != "" {
			dir, err := enums.ParseSortDirection(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort direction"))
				return
			}
			sort.Direction = dir
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 100000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, views.AdminProductPage(svc.Products(), filter, sort, page))
	}
}

func AdminProductCreate(svc ProductAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req productRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		created, err := svc.AddProduct(ctx, req.toProduct())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// AdminProductUpdate replaces the editable fields. Rating and reviews are
// carried over from the stored product.
func AdminProductUpdate(svc ProductAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var req productRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		existing, err := svc.Product(models.ProductID(id))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		updated := req.toProduct()
		updated.ID = existing.ID
		updated.Rating = existing.Rating
		updated.Reviews = existing.Reviews
		if updated.Seo == nil {
			updated.Seo = existing.Seo
		}
		if err := svc.UpdateProduct(ctx, updated); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func AdminProductDelete(svc ProductAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.DeleteProduct(ctx, models.ProductID(id)); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func AdminProductBulkDelete(svc ProductAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req bulkDeleteRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ids := make([]models.ProductID, 0, len(req.IDs))
		for _, id := range req.IDs {
			ids = append(ids, models.ProductID(id))
		}
		removed, err := svc.DeleteMultipleProducts(ctx, ids)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"deleted": removed})
	}
}

func AdminProductStock(svc ProductAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var req stockRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if err := svc.UpdateProductStock(ctx, models.ProductID(id), *req.Stock); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		product, err := svc.Product(models.ProductID(id))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminInventory lists every product with its stock bucket.
func AdminInventory(svc ProductAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, views.Inventory(svc.Products()))
	}
}
