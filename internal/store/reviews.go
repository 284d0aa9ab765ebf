package store

import (
	"context"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
	"github.com/zarnosh/My-E-comerce-Store/pkg/money"
)

// AddReview appends a review by the session user and recomputes the product
// rating as the mean of all review ratings rounded to one decimal.
func (s *Store) AddReview(ctx context.Context, productID models.ProductID, rating int, comment string) (models.Review, error) {
	if rating < 1 || rating > 5 {
		return models.Review{}, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentUserLocked()
	if user == nil {
		return models.Review{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required to review")
	}
	idx := s.productIndex(productID)
	if idx < 0 {
		return models.Review{}, productNotFound(productID)
	}

	review := models.Review{
		ID:       models.ReviewID(s.ids.Next(models.PrefixReview)),
		UserID:   user.ID,
		UserName: user.DisplayName(),
		Rating:   rating,
		Comment:  comment,
		Date:     s.now().UTC(),
	}
	product := &s.products[idx]
	product.Reviews = append(product.Reviews, review)

	ratings := make([]int, 0, len(product.Reviews))
	for _, r := range product.Reviews {
		ratings = append(ratings, r.Rating)
	}
	product.Rating = money.MeanRounded(ratings, 1)

	s.notifier.Show("Thank you for your review!", enums.ToastKindSuccess)
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"product_id": productID,
		"user_id":    user.ID,
		"rating":     product.Rating,
	}), "review.added")
	return review, nil
}
