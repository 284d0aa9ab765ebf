package store

import (
	"context"
	"errors"
	"strings"

	"github.com/zarnosh/My-E-comerce-Store/internal/persistence"
	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

const (
	msgBlockedAccount = "This account has been blocked."
	msgWishlistLogin  = "Please log in to manage your wishlist."
)

// Login starts a session for the user matching both email and role. A blocked
// account is refused and any existing session is left as it was.
func (s *Store) Login(ctx context.Context, email string, role enums.UserRole) (models.User, error) {
	if !role.IsValid() {
		return models.User{}, pkgerrors.Newf(pkgerrors.CodeValidation, "unknown role %q", role)
	}
	email = strings.TrimSpace(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.users, func(u models.User) bool { return u.Email == email && u.Role == role })
	if idx < 0 {
		s.logg.Info(s.logg.WithField(ctx, "role", role), "session.login_unknown")
		return models.User{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "no account matches this email and role")
	}
	user := &s.users[idx]
	if user.IsBlocked {
		s.notifier.Show(msgBlockedAccount, enums.ToastKindError)
		s.logg.Warn(s.logg.WithUserID(ctx, string(user.ID)), "session.login_blocked")
		return models.User{}, pkgerrors.New(pkgerrors.CodeForbidden, "account is blocked")
	}

	if user.Wishlist == nil {
		user.Wishlist = []models.ProductID{}
	}
	s.currentUserID = user.ID
	s.persistSessionLocked(ctx)

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"user_id": user.ID, "role": role}), "session.login")
	return user.Clone(), nil
}

// Logout ends the session and drops its persisted copy.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID != "" {
		s.logg.Info(s.logg.WithUserID(ctx, string(s.currentUserID)), "session.logout")
	}
	s.currentUserID = ""
	s.persistSessionLocked(ctx)
}

// CurrentUser resolves the session against the users collection.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.currentUserLocked()
	if user == nil {
		return models.User{}, false
	}
	return user.Clone(), true
}

// Hydrate restores filter settings and the session from durable storage.
// Missing or unreadable snapshots leave the defaults in place.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.persister.LoadFilterSettings(ctx)
	switch {
	case err == nil:
		s.filterSettings = settings
	case !errors.Is(err, persistence.ErrNoSnapshot):
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "hydrate.filter_settings_ignored")
	}

	snapshot, err := s.persister.LoadSessionUser(ctx)
	if err != nil {
		if !errors.Is(err, persistence.ErrNoSnapshot) {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "hydrate.session_ignored")
			s.clearPersistedSessionLocked(ctx)
		}
		return
	}

	idx := indexOf(s.users, func(u models.User) bool { return u.ID == snapshot.ID })
	if idx < 0 || s.users[idx].IsBlocked {
		s.logg.Info(s.logg.WithUserID(ctx, string(snapshot.ID)), "hydrate.session_dropped")
		s.clearPersistedSessionLocked(ctx)
		return
	}
	if snapshot.Wishlist != nil {
		s.users[idx].Wishlist = append([]models.ProductID{}, snapshot.Wishlist...)
	}
	s.currentUserID = snapshot.ID
	s.logg.Info(s.logg.WithUserID(ctx, string(snapshot.ID)), "hydrate.session_restored")
}

func (s *Store) currentUserLocked() *models.User {
	if s.currentUserID == "" {
		return nil
	}
	idx := indexOf(s.users, func(u models.User) bool { return u.ID == s.currentUserID })
	if idx < 0 {
		return nil
	}
	return &s.users[idx]
}

// persistSessionLocked writes the session user, or clears the stored copy when
// nobody is logged in. Failures are logged; the in-memory change stands.
func (s *Store) persistSessionLocked(ctx context.Context) {
	user := s.currentUserLocked()
	if user == nil {
		s.clearPersistedSessionLocked(ctx)
		return
	}
	if err := s.persister.SaveSessionUser(ctx, *user); err != nil {
		s.logg.Error(s.logg.WithUserID(ctx, string(user.ID)), "session.persist_failed", err)
	}
}

func (s *Store) clearPersistedSessionLocked(ctx context.Context) {
	if err := s.persister.ClearSessionUser(ctx); err != nil {
		s.logg.Error(ctx, "session.clear_failed", err)
	}
}
