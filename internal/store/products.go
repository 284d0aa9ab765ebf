package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// Products returns a copy of the catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.products, models.Product.Clone)
}

// Product returns one product by id.
func (s *Store) Product(id models.ProductID) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.productIndex(id)
	if idx < 0 {
		return models.Product{}, productNotFound(id)
	}
	return s.products[idx].Clone(), nil
}

// AddProduct appends a new product. The id, rating and reviews are assigned by
// the store; the category must name an existing category.
func (s *Store) AddProduct(ctx context.Context, product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateProduct(product); err != nil {
		return models.Product{}, err
	}

	created := product.Clone()
	created.ID = models.ProductID(s.ids.Next(models.PrefixProduct))
	created.Rating = 0
	created.Reviews = []models.Review{}
	if created.Seo == nil {
		created.Seo = &models.SeoSettings{}
	}
	normalizeLists(&created)
	s.products = append(s.products, created)

	s.logg.Info(s.logg.WithField(ctx, "product_id", created.ID), "product.created")
	return created.Clone(), nil
}

// UpdateProduct replaces the product with the same id.
func (s *Store) UpdateProduct(ctx context.Context, product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(product.ID)
	if idx < 0 {
		return productNotFound(product.ID)
	}
	if err := s.validateProduct(product); err != nil {
		return err
	}
	updated := product.Clone()
	normalizeLists(&updated)
	s.products[idx] = updated

	s.logg.Info(s.logg.WithField(ctx, "product_id", product.ID), "product.updated")
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id models.ProductID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(id)
	if idx < 0 {
		return productNotFound(id)
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)

	s.logg.Info(s.logg.WithField(ctx, "product_id", id), "product.deleted")
	return nil
}

// DeleteMultipleProducts removes every listed product and reports how many
// were actually removed. Unknown ids are skipped.
func (s *Store) DeleteMultipleProducts(ctx context.Context, ids []models.ProductID) (int, error) {
	if len(ids) == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "at least one product id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	targets := make(map[models.ProductID]struct{}, len(ids))
	for _, id := range ids {
		targets[id] = struct{}{}
	}
	kept := s.products[:0]
	removed := 0
	for _, p := range s.products {
		if _, ok := targets[p.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	clear(s.products[len(kept):])
	s.products = kept

	if removed == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "none of the products exist")
	}
	s.notifier.Show(fmt.Sprintf("%d products deleted successfully.", removed), enums.ToastKindSuccess)
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"requested": len(ids), "removed": removed}), "product.bulk_deleted")
	return removed, nil
}

// UpdateProductStock sets the stock level directly.
func (s *Store) UpdateProductStock(ctx context.Context, id models.ProductID, stock int) error {
	if stock < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "stock must be zero or greater")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(id)
	if idx < 0 {
		return productNotFound(id)
	}
	s.products[idx].Stock = stock

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"product_id": id, "stock": stock}), "product.stock_updated")
	return nil
}

func (s *Store) productIndex(id models.ProductID) int {
	return indexOf(s.products, func(p models.Product) bool { return p.ID == id })
}

func (s *Store) validateProduct(p models.Product) error {
	details := map[string]string{}
	if strings.TrimSpace(p.Name) == "" {
		details["name"] = "is required"
	}
	if p.Price < 0 {
		details["price"] = "must be zero or greater"
	}
	if p.Stock < 0 {
		details["stock"] = "must be zero or greater"
	}
	if s.categoryIndexByName(p.Category) < 0 {
		details["category"] = fmt.Sprintf("unknown category %q", p.Category)
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid product").WithDetails(details)
	}
	return nil
}

func normalizeLists(p *models.Product) {
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Reviews == nil {
		p.Reviews = []models.Review{}
	}
}

func productNotFound(id models.ProductID) error {
	return pkgerrors.Newf(pkgerrors.CodeNotFound, "product %s not found", id)
}
