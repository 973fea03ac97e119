package service

import (
	"context"
	"fmt"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/validators"
	"github.com/rvanwijk/pii-guard/models"
)

type vaultService struct {
	vault  VaultAccess
	logger *logger.Logger
}

func NewVaultService(vaultAccess VaultAccess, log *logger.Logger) VaultService {
	return &vaultService{
		vault:  vaultAccess,
		logger: log,
	}
}

func (s *vaultService) ListEntries(ctx context.Context, personID string, category models.Category) ([]models.VaultEntry, error) {
	if category != "" && !category.Known() {
		return nil, fmt.Errorf("%w: %q", validators.ErrUnknownCategory, category)
	}

	return s.vault.List(ctx, store.VaultFilter{PersonID: personID, Category: category})
}

func (s *vaultService) RemoveEntry(ctx context.Context, entryID string) error {
	if err := s.vault.Remove(ctx, entryID); err != nil {
		return fmt.Errorf("remove entry: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "vaultService.RemoveEntry").
		Str("entry_id", entryID).
		Msg("vault entry removed")

	return nil
}
