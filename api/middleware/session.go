package middleware

import (
	"net/http"

	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// SessionSource resolves the storefront's current user.
type SessionSource interface {
	CurrentUser() (models.User, bool)
}

// Session copies the current user, when there is one, into the request
// context and the log fields.
func Session(source SessionSource, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := source.CurrentUser()
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx := WithUser(r.Context(), string(user.ID), user.Role.String())
			if logg != nil {
				ctx = logg.WithUserID(ctx, string(user.ID))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
