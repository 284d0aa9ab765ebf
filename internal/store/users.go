package store

import (
	"context"
	"slices"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.users, models.User.Clone)
}

// ToggleUserBlockedStatus flips the blocked flag and returns the new value.
func (s *Store) ToggleUserBlockedStatus(ctx context.Context, id models.UserID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.users, func(u models.User) bool { return u.ID == id })
	if idx < 0 {
		return false, pkgerrors.Newf(pkgerrors.CodeNotFound, "user %s not found", id)
	}
	s.users[idx].IsBlocked = !s.users[idx].IsBlocked
	blocked := s.users[idx].IsBlocked

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"user_id": id, "blocked": blocked}), "user.block_toggled")
	return blocked, nil
}

// ToggleWishlist adds or removes a product on the session user's wishlist and
// reports whether it is now present. Removing works even after the product was
// deleted from the catalog.
func (s *Store) ToggleWishlist(ctx context.Context, productID models.ProductID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentUserLocked()
	if user == nil {
		s.notifier.Show(msgWishlistLogin, enums.ToastKindError)
		return false, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required to manage the wishlist")
	}

	added := false
	if idx := slices.Index(user.Wishlist, productID); idx >= 0 {
		user.Wishlist = slices.Delete(user.Wishlist, idx, idx+1)
		s.notifier.Show("Removed from wishlist", enums.ToastKindSuccess)
	} else {
		if s.productIndex(productID) < 0 {
			return false, productNotFound(productID)
		}
		user.Wishlist = append(user.Wishlist, productID)
		added = true
		s.notifier.Show("Added to wishlist", enums.ToastKindSuccess)
	}
	s.persistSessionLocked(ctx)

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"user_id":    user.ID,
		"product_id": productID,
		"added":      added,
	}), "wishlist.toggled")
	return added, nil
}
