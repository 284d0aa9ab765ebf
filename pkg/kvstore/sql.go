package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entry maps onto the kv_entries table created by pkg/migrate.
type entry struct {
	Scope     string    `gorm:"column:scope;primaryKey"`
	Key       string    `gorm:"column:entry_key;primaryKey"`
	Value     string    `gorm:"column:entry_value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (entry) TableName() string { return "kv_entries" }

// SQL is a Store backed by sqlite or postgres through GORM.
type SQL struct {
	db    *gorm.DB
	scope Scope
	now   func() time.Time
}

func NewSQL(db *gorm.DB, scope Scope) (*SQL, error) {
	if db == nil {
		return nil, errors.New("db is required")
	}
	if scope == "" {
		return nil, errors.New("scope is required")
	}
	return &SQL{db: db, scope: scope, now: time.Now}, nil
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, error) {
	var row entry
	err := s.db.WithContext(ctx).
		Where("scope = ? AND entry_key = ?", string(s.scope), key).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return []byte(row.Value), nil
}

func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	row := entry{
		Scope:     string(s.scope),
		Key:       key,
		Value:     string(value),
		UpdatedAt: s.now().UTC(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}, {Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).
		Where("scope = ? AND entry_key = ?", string(s.scope), key).
		Delete(&entry{}).Error
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
