package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/mock"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/validators"
	"github.com/rvanwijk/pii-guard/models"
)

func newTestVaultService(t *testing.T) (VaultService, *mock.MockVaultAccess) {
	t.Helper()

	ctrl := gomock.NewController(t)
	vaultAccess := mock.NewMockVaultAccess(ctrl)

	return NewVaultService(vaultAccess, logger.Nop()), vaultAccess
}

func TestVaultService_ListEntries_PassesFilter(t *testing.T) {
	svc, vaultAccess := newTestVaultService(t)
	ctx := context.Background()

	vaultAccess.EXPECT().
		List(ctx, store.VaultFilter{PersonID: "p1", Category: models.CategoryBankAccount}).
		Return([]models.VaultEntry{{ID: "e1"}}, nil)

	entries, err := svc.ListEntries(ctx, "p1", models.CategoryBankAccount)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)
}

func TestVaultService_ListEntries_EmptyFilterListsAll(t *testing.T) {
	svc, vaultAccess := newTestVaultService(t)
	ctx := context.Background()

	vaultAccess.EXPECT().List(ctx, store.VaultFilter{}).Return(nil, nil)

	entries, err := svc.ListEntries(ctx, "", "")

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVaultService_ListEntries_UnknownCategoryRejected(t *testing.T) {
	svc, _ := newTestVaultService(t)

	_, err := svc.ListEntries(context.Background(), "", "sterrenbeeld")

	assert.ErrorIs(t, err, validators.ErrUnknownCategory)
}

func TestVaultService_RemoveEntry_Delegates(t *testing.T) {
	svc, vaultAccess := newTestVaultService(t)
	ctx := context.Background()

	vaultAccess.EXPECT().Remove(ctx, "e1").Return(nil)

	assert.NoError(t, svc.RemoveEntry(ctx, "e1"))
}

func TestVaultService_RemoveEntry_NotFoundPropagates(t *testing.T) {
	svc, vaultAccess := newTestVaultService(t)
	ctx := context.Background()

	vaultAccess.EXPECT().Remove(ctx, "weg").Return(store.ErrVaultEntryNotFound)

	err := svc.RemoveEntry(ctx, "weg")

	assert.ErrorIs(t, err, store.ErrVaultEntryNotFound)
}
