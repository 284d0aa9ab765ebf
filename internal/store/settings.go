package store

import (
	"context"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

func (s *Store) FilterSettings() models.FilterSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterSettings
}

// UpdateFilterSettings replaces the singleton and writes it through.
func (s *Store) UpdateFilterSettings(ctx context.Context, settings models.FilterSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filterSettings = settings
	if err := s.persister.SaveFilterSettings(ctx, settings); err != nil {
		s.logg.Error(ctx, "settings.persist_failed", err)
	}
	s.notifier.Show("Filter settings updated!", enums.ToastKindSuccess)
}
