package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
)

func pathParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		return "", pkgerrors.Newf(pkgerrors.CodeValidation, "%s is required", name)
	}
	return value, nil
}
