package store

import (
	"context"
	"strings"

	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.categories, models.Category.Clone)
}

// AddCategory appends a category. Names are unique ignoring case because
// products join on them.
func (s *Store) AddCategory(ctx context.Context, category models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(category.Name)
	if name == "" {
		return models.Category{}, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}
	if s.categoryIndexByName(name) >= 0 {
		return models.Category{}, duplicateCategory(name)
	}

	created := category.Clone()
	created.ID = models.CategoryID(s.ids.Next(models.PrefixCategory))
	created.Name = name
	if created.Seo == nil {
		created.Seo = &models.SeoSettings{}
	}
	s.categories = append(s.categories, created)

	s.logg.Info(s.logg.WithField(ctx, "category_id", created.ID), "category.created")
	return created.Clone(), nil
}

// UpdateCategory replaces the category with the same id. Renaming does not
// touch products that still carry the old name.
func (s *Store) UpdateCategory(ctx context.Context, category models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.categories, func(c models.Category) bool { return c.ID == category.ID })
	if idx < 0 {
		return pkgerrors.Newf(pkgerrors.CodeNotFound, "category %s not found", category.ID)
	}
	name := strings.TrimSpace(category.Name)
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}
	if other := s.categoryIndexByName(name); other >= 0 && other != idx {
		return duplicateCategory(name)
	}

	updated := category.Clone()
	updated.Name = name
	s.categories[idx] = updated

	s.logg.Info(s.logg.WithField(ctx, "category_id", category.ID), "category.updated")
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id models.CategoryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.categories, func(c models.Category) bool { return c.ID == id })
	if idx < 0 {
		return pkgerrors.Newf(pkgerrors.CodeNotFound, "category %s not found", id)
	}
	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)

	s.logg.Info(s.logg.WithField(ctx, "category_id", id), "category.deleted")
	return nil
}

func (s *Store) categoryIndexByName(name string) int {
	return indexOf(s.categories, func(c models.Category) bool { return strings.EqualFold(c.Name, name) })
}

func duplicateCategory(name string) error {
	return pkgerrors.New(pkgerrors.CodeConflict, "category already exists").WithDetails(map[string]string{"name": name})
}
