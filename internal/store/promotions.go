package store

import (
	"context"
	"slices"
	"strings"

	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

func (s *Store) Promotions() []models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.promotions)
}

// ActivePromotion looks up an active promotion by code, ignoring case.
func (s *Store) ActivePromotion(code string) (models.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.promotionIndexByCode(strings.TrimSpace(code))
	if idx < 0 || !s.promotions[idx].IsActive {
		return models.Promotion{}, pkgerrors.New(pkgerrors.CodeNotFound, "promotion code is not active")
	}
	return s.promotions[idx], nil
}

func (s *Store) AddPromotion(ctx context.Context, promo models.Promotion) (models.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promo.Code = strings.TrimSpace(promo.Code)
	if err := validatePromotion(promo); err != nil {
		return models.Promotion{}, err
	}
	if s.promotionIndexByCode(promo.Code) >= 0 {
		return models.Promotion{}, duplicatePromotion(promo.Code)
	}
	promo.ID = models.PromotionID(s.ids.Next(models.PrefixPromotion))
	s.promotions = append(s.promotions, promo)

	s.logg.Info(s.logg.WithField(ctx, "promotion_id", promo.ID), "promotion.created")
	return promo, nil
}

func (s *Store) UpdatePromotion(ctx context.Context, promo models.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.promotions, func(p models.Promotion) bool { return p.ID == promo.ID })
	if idx < 0 {
		return pkgerrors.Newf(pkgerrors.CodeNotFound, "promotion %s not found", promo.ID)
	}
	promo.Code = strings.TrimSpace(promo.Code)
	if err := validatePromotion(promo); err != nil {
		return err
	}
	if other := s.promotionIndexByCode(promo.Code); other >= 0 && other != idx {
		return duplicatePromotion(promo.Code)
	}
	s.promotions[idx] = promo

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"promotion_id": promo.ID, "active": promo.IsActive}), "promotion.updated")
	return nil
}

func (s *Store) DeletePromotion(ctx context.Context, id models.PromotionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.promotions, func(p models.Promotion) bool { return p.ID == id })
	if idx < 0 {
		return pkgerrors.Newf(pkgerrors.CodeNotFound, "promotion %s not found", id)
	}
	s.promotions = append(s.promotions[:idx], s.promotions[idx+1:]...)

	s.logg.Info(s.logg.WithField(ctx, "promotion_id", id), "promotion.deleted")
	return nil
}

func (s *Store) promotionIndexByCode(code string) int {
	return indexOf(s.promotions, func(p models.Promotion) bool { return strings.EqualFold(p.Code, code) })
}

func validatePromotion(p models.Promotion) error {
	if p.Code == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "promotion code is required")
	}
	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount percent must be between 0 and 100")
	}
	return nil
}

func duplicatePromotion(code string) error {
	return pkgerrors.New(pkgerrors.CodeConflict, "promotion code already exists").WithDetails(map[string]string{"code": code})
}
