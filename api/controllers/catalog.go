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

// CatalogReader is the read side of the catalog.
type CatalogReader interface {
	Products() []models.Product
	Product(id models.ProductID) (models.Product, error)
	Categories() []models.Category
	FilterSettings() models.FilterSettings
}

// ReviewWriter records product reviews.
type ReviewWriter interface {
	AddReview(ctx context.Context, productID models.ProductID, rating int, comment string) (models.Review, error)
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// CatalogBrowse filters the storefront catalog. Price, size and color
// parameters only take effect when the matching filter is enabled.
func CatalogBrowse(svc CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		maxPrice, err := validators.ParseQueryFloat(r, "max_price")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		q := r.URL.Query()
		products := views.BrowseCatalog(svc.Products(), svc.FilterSettings(), views.CatalogQuery{
			Category: q.Get("category"),
			Search:   q.Get("search"),
			MaxPrice: maxPrice,
			Sizes:    validators.ParseQueryList(r, "sizes"),
			Colors:   validators.ParseQueryList(r, "colors"),
		})
		responses.WriteSuccess(w, products)
	}
}

func CatalogFeatured(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, views.FeaturedProducts(svc.Products()))
	}
}

func CatalogFacets(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, views.CatalogFacets(svc.Products(), r.URL.Query().Get("category")))
	}
}

func CatalogProduct(svc CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "productId")
		if err != nil {
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

func CatalogCategories(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Categories())
	}
}

// StorefrontFilterSettings tells the storefront which filters to render.
func StorefrontFilterSettings(svc CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.FilterSettings())
	}
}

func ProductReviewCreate(svc ReviewWriter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := pathParam(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var req reviewRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		review, err := svc.AddReview(ctx, models.ProductID(id), req.Rating, req.Comment)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}
