package store

import (
	"context"
	"slices"
	"strings"

	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

func (s *Store) TradeAreas() []models.TradeArea {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.tradeAreas, models.TradeArea.Clone)
}

func (s *Store) AddTradeArea(ctx context.Context, area models.TradeArea) (models.TradeArea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateTradeArea(area); err != nil {
		return models.TradeArea{}, err
	}
	created := area.Clone()
	created.ID = models.TradeAreaID(s.ids.Next(models.PrefixTradeArea))
	if created.Cities == nil {
		created.Cities = []string{}
	}
	s.tradeAreas = append(s.tradeAreas, created)

	s.logg.Info(s.logg.WithField(ctx, "trade_area_id", created.ID), "trade_area.created")
	return created.Clone(), nil
}

func (s *Store) UpdateTradeArea(ctx context.Context, area models.TradeArea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.tradeAreaIndex(area.ID)
	if idx < 0 {
		return tradeAreaNotFound(area.ID)
	}
	if err := validateTradeArea(area); err != nil {
		return err
	}
	s.tradeAreas[idx] = area.Clone()

	s.logg.Info(s.logg.WithField(ctx, "trade_area_id", area.ID), "trade_area.updated")
	return nil
}

// DeleteTradeArea removes the trade area together with every branch assigned
// to it.
func (s *Store) DeleteTradeArea(ctx context.Context, id models.TradeAreaID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.tradeAreaIndex(id)
	if idx < 0 {
		return tradeAreaNotFound(id)
	}
	s.tradeAreas = append(s.tradeAreas[:idx], s.tradeAreas[idx+1:]...)

	before := len(s.branches)
	s.branches = slices.DeleteFunc(s.branches, func(b models.Branch) bool { return b.TradeAreaID == id })

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"trade_area_id":    id,
		"branches_removed": before - len(s.branches),
	}), "trade_area.deleted")
	return nil
}

func (s *Store) Branches() []models.Branch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.branches)
}

// AddBranch appends a branch. Its trade area must exist.
func (s *Store) AddBranch(ctx context.Context, branch models.Branch) (models.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateBranch(branch); err != nil {
		return models.Branch{}, err
	}
	branch.ID = models.BranchID(s.ids.Next(models.PrefixBranch))
	s.branches = append(s.branches, branch)

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"branch_id": branch.ID, "trade_area_id": branch.TradeAreaID}), "branch.created")
	return branch, nil
}

func (s *Store) UpdateBranch(ctx context.Context, branch models.Branch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.branches, func(b models.Branch) bool { return b.ID == branch.ID })
	if idx < 0 {
		return pkgerrors.Newf(pkgerrors.CodeNotFound, "branch %s not found", branch.ID)
	}
	if err := s.validateBranch(branch); err != nil {
		return err
	}
	s.branches[idx] = branch

	s.logg.Info(s.logg.WithField(ctx, "branch_id", branch.ID), "branch.updated")
	return nil
}

func (s *Store) DeleteBranch(ctx context.Context, id models.BranchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.branches, func(b models.Branch) bool { return b.ID == id })
	if idx < 0 {
		return pkgerrors.Newf(pkgerrors.CodeNotFound, "branch %s not found", id)
	}
	s.branches = append(s.branches[:idx], s.branches[idx+1:]...)

	s.logg.Info(s.logg.WithField(ctx, "branch_id", id), "branch.deleted")
	return nil
}

func (s *Store) tradeAreaIndex(id models.TradeAreaID) int {
	return indexOf(s.tradeAreas, func(t models.TradeArea) bool { return t.ID == id })
}

func (s *Store) validateBranch(b models.Branch) error {
	if strings.TrimSpace(b.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "branch name is required")
	}
	if s.tradeAreaIndex(b.TradeAreaID) < 0 {
		return tradeAreaNotFound(b.TradeAreaID)
	}
	return nil
}

func validateTradeArea(t models.TradeArea) error {
	if strings.TrimSpace(t.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "trade area name is required")
	}
	if t.DeliveryRadiusKm < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "delivery radius must be zero or greater")
	}
	return nil
}

func tradeAreaNotFound(id models.TradeAreaID) error {
	return pkgerrors.Newf(pkgerrors.CodeNotFound, "trade area %s not found", id)
}
