package controllers

import (
	"context"
	"net/http"

	"github.com/zarnosh/My-E-comerce-Store/api/responses"
	"github.com/zarnosh/My-E-comerce-Store/api/validators"
	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// SessionService is the login surface of the entity store.
type SessionService interface {
	Login(ctx context.Context, email string, role enums.UserRole) (models.User, error)
	Logout(ctx context.Context)
	CurrentUser() (models.User, bool)
}

// ToastSource exposes the visible notification.
type ToastSource interface {
	Toast() (models.Toast, bool)
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=customer admin"`
}

func SessionLogin(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req loginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		role, err := enums.ParseUserRole(req.Role)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
			return
		}
		user, err := svc.Login(ctx, req.Email, role)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

func SessionLogout(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Logout(r.Context())
		responses.WriteSuccess(w, map[string]bool{"loggedOut": true})
	}
}

func SessionCurrent(svc SessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := svc.CurrentUser()
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// ToastCurrent returns the visible toast or null.
func ToastCurrent(src ToastSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toast, ok := src.Toast()
		if !ok {
			responses.WriteSuccess(w, nil)
			return
		}
		responses.WriteSuccess(w, toast)
	}
}
