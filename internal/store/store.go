// Package store is the authoritative in-memory state of the storefront: the
// catalog and operational collections plus the active session.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/zarnosh/My-E-comerce-Store/internal/notifications"
	"github.com/zarnosh/My-E-comerce-Store/internal/persistence"
	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	"github.com/zarnosh/My-E-comerce-Store/pkg/ids"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/metrics"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// Persister mirrors the session user and filter settings to durable storage.
type Persister interface {
	SaveSessionUser(ctx context.Context, user models.User) error
	LoadSessionUser(ctx context.Context) (models.User, error)
	ClearSessionUser(ctx context.Context) error
	SaveFilterSettings(ctx context.Context, settings models.FilterSettings) error
	LoadFilterSettings(ctx context.Context) (models.FilterSettings, error)
}

// Notifier shows the single transient toast.
type Notifier interface {
	Show(message string, kind enums.ToastKind)
	Current() (models.Toast, bool)
}

// IDGenerator mints <prefix><millis> identifiers.
type IDGenerator interface {
	Next(prefix string) string
}

// Params groups the store's collaborators. Only Dataset is meaningful for
// every caller; the rest fall back to in-process defaults when nil.
type Params struct {
	Dataset   models.Dataset
	Persister Persister
	Notifier  Notifier
	IDs       IDGenerator
	Clock     func() time.Time
	Logger    *logger.Logger
	Metrics   *metrics.StoreMetrics
}

// Store guards every collection with one mutex so each operation is atomic
// with respect to the others.
type Store struct {
	mu sync.Mutex

	products       []models.Product
	categories     []models.Category
	users          []models.User
	orders         []models.Order
	tradeAreas     []models.TradeArea
	branches       []models.Branch
	promotions     []models.Promotion
	filterSettings models.FilterSettings
	currentUserID  models.UserID

	persister Persister
	notifier  Notifier
	ids       IDGenerator
	now       func() time.Time
	logg      *logger.Logger
	metrics   *metrics.StoreMetrics
}

// New builds a store owning a deep copy of the dataset.
func New(params Params) *Store {
	now := params.Clock
	if now == nil {
		now = time.Now
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	persister := params.Persister
	if persister == nil {
		persister = noopPersister{}
	}
	notifier := params.Notifier
	if notifier == nil {
		notifier = notifications.New(notifications.Params{Clock: now, Logger: logg, Metrics: params.Metrics})
	}
	generator := params.IDs
	if generator == nil {
		generator = ids.NewGenerator(now)
	}

	data := params.Dataset
	return &Store{
		products:       cloneAll(data.Products, models.Product.Clone),
		categories:     cloneAll(data.Categories, models.Category.Clone),
		users:          cloneAll(data.Users, models.User.Clone),
		orders:         cloneAll(data.Orders, models.Order.Clone),
		tradeAreas:     cloneAll(data.TradeAreas, models.TradeArea.Clone),
		branches:       slices.Clone(data.Branches),
		promotions:     slices.Clone(data.Promotions),
		filterSettings: models.DefaultFilterSettings(),
		persister:      persister,
		notifier:       notifier,
		ids:            generator,
		now:            now,
		logg:           logg,
		metrics:        params.Metrics,
	}
}

// ShowToast replaces the visible notification.
func (s *Store) ShowToast(message string, kind enums.ToastKind) {
	s.notifier.Show(message, kind)
}

// Toast returns the visible notification, if any.
func (s *Store) Toast() (models.Toast, bool) {
	return s.notifier.Current()
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, clone(item))
	}
	return out
}

func indexOf[T any](items []T, match func(T) bool) int {
	return slices.IndexFunc(items, match)
}

type noopPersister struct{}

func (noopPersister) SaveSessionUser(context.Context, models.User) error { return nil }
func (noopPersister) LoadSessionUser(context.Context) (models.User, error) {
	return models.User{}, persistence.ErrNoSnapshot
}
func (noopPersister) ClearSessionUser(context.Context) error                        { return nil }
func (noopPersister) SaveFilterSettings(context.Context, models.FilterSettings) error { return nil }
func (noopPersister) LoadFilterSettings(context.Context) (models.FilterSettings, error) {
	return models.FilterSettings{}, persistence.ErrNoSnapshot
}
