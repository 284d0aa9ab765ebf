// Package persistence mirrors session and preference state into the durable
// key-value scopes so a restart can re-hydrate it.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/kvstore"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/metrics"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// Storage keys. The session scope holds the current user; the persistent scope
// holds filter settings and the cart.
const (
	KeyCurrentUser    = "currentUser"
	KeyFilterSettings = "filterSettings"
	KeyCartItems      = "cartItems"
)

// SchemaVersion is written into every stored envelope. Any other version is
// treated as corrupt.
const SchemaVersion = 1

var (
	// ErrNoSnapshot means nothing was stored under the key.
	ErrNoSnapshot = errors.New("no snapshot stored")
	// ErrCorruptSnapshot means the stored value could not be decoded.
	ErrCorruptSnapshot = errors.New("snapshot is corrupt")
)

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

type Params struct {
	Session    kvstore.Store
	Persistent kvstore.Store
	Logger     *logger.Logger
	Metrics    *metrics.StoreMetrics
}

// Bridge serializes entity snapshots into the two key-value scopes.
type Bridge struct {
	session    kvstore.Store
	persistent kvstore.Store
	logg       *logger.Logger
	metrics    *metrics.StoreMetrics
}

func NewBridge(params Params) (*Bridge, error) {
	if params.Session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session store is required")
	}
	if params.Persistent == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "persistent store is required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &Bridge{
		session:    params.Session,
		persistent: params.Persistent,
		logg:       logg,
		metrics:    params.Metrics,
	}, nil
}

func (b *Bridge) SaveSessionUser(ctx context.Context, user models.User) error {
	return b.save(ctx, b.session, KeyCurrentUser, user)
}

func (b *Bridge) LoadSessionUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := b.load(ctx, b.session, KeyCurrentUser, &user); err != nil {
		return models.User{}, err
	}
	if user.ID == "" {
		return models.User{}, fmt.Errorf("%w: %s has no user id", ErrCorruptSnapshot, KeyCurrentUser)
	}
	return user, nil
}

func (b *Bridge) ClearSessionUser(ctx context.Context) error {
	if err := b.session.Delete(ctx, KeyCurrentUser); err != nil {
		b.metrics.IncPersistenceFailure(KeyCurrentUser, "delete")
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear "+KeyCurrentUser)
	}
	return nil
}

func (b *Bridge) SaveFilterSettings(ctx context.Context, settings models.FilterSettings) error {
	return b.save(ctx, b.persistent, KeyFilterSettings, settings)
}

func (b *Bridge) LoadFilterSettings(ctx context.Context) (models.FilterSettings, error) {
	var settings models.FilterSettings
	if err := b.load(ctx, b.persistent, KeyFilterSettings, &settings); err != nil {
		return models.FilterSettings{}, err
	}
	return settings, nil
}

func (b *Bridge) SaveCart(ctx context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	return b.save(ctx, b.persistent, KeyCartItems, items)
}

func (b *Bridge) LoadCart(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := b.load(ctx, b.persistent, KeyCartItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (b *Bridge) save(ctx context.Context, store kvstore.Store, key string, value any) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode "+key)
	}
	raw, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode "+key)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		b.metrics.IncPersistenceFailure(key, "set")
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write "+key)
	}
	b.metrics.ObservePersist(key, time.Since(start))
	return nil
}

func (b *Bridge) load(ctx context.Context, store kvstore.Store, key string, dest any) error {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return ErrNoSnapshot
	}
	if err != nil {
		b.metrics.IncPersistenceFailure(key, "get")
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read "+key)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return b.corrupt(ctx, key, err)
	}
	if env.Version != SchemaVersion {
		return b.corrupt(ctx, key, fmt.Errorf("unsupported schema version %d", env.Version))
	}
	if len(env.Data) == 0 {
		return b.corrupt(ctx, key, errors.New("missing data"))
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return b.corrupt(ctx, key, err)
	}
	return nil
}

func (b *Bridge) corrupt(ctx context.Context, key string, cause error) error {
	b.metrics.IncPersistenceFailure(key, "decode")
	b.logg.Warn(b.logg.WithFields(ctx, map[string]any{"key": key, "cause": cause.Error()}), "persistence.corrupt_snapshot")
	return fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, key, cause)
}
