package repository

import (
	"context"
	"testing"

	"waste-pickup/internal/data/entity"
	"waste-pickup/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

func TestWasteLogRepositoryLeftJoin(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	ctx := context.Background()
	_, err := SeedUsers(ctx, db, DefaultSeedUsers())
	require.NoError(t, err)

	pickups := NewPickupRepository(db, zap.NewNop())
	logs := NewWasteLogRepository(db, zap.NewNop())

	pr := newPickup(2, "2024-05-01 08:00:00")
	require.NoError(t, pickups.Create(ctx, pr))

	linked := &entity.WasteLog{RequestID: int64Ptr(pr.ID), WasteType: strPtr("organic"), Timestamp: strPtr("2024-05-01 12:00:00")}
	dangling := &entity.WasteLog{RequestID: int64Ptr(404), WasteType: strPtr("plastic"), Timestamp: strPtr("2024-05-01 12:10:00")}
	unlinked := &entity.WasteLog{WasteType: strPtr("glass"), Timestamp: strPtr("2024-05-01 12:20:00")}
	for _, wl := range []*entity.WasteLog{linked, dangling, unlinked} {
		require.NoError(t, logs.Create(ctx, wl))
	}

	got, err := logs.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3, "logs without a matching request are kept")

	// newest first
	assert.Equal(t, unlinked.ID, got[0].ID)
	assert.Equal(t, dangling.ID, got[1].ID)
	assert.Equal(t, linked.ID, got[2].ID)

	assert.Nil(t, got[0].PickupRequestID)
	assert.Nil(t, got[0].ResidentName)

	assert.Nil(t, got[1].PickupRequestID)
	assert.Nil(t, got[1].ResidentName)
	assert.Nil(t, got[1].HouseNumber)
	require.NotNil(t, got[1].RequestID)
	assert.EqualValues(t, 404, *got[1].RequestID)

	require.NotNil(t, got[2].PickupRequestID)
	assert.Equal(t, pr.ID, *got[2].PickupRequestID)
	require.NotNil(t, got[2].ResidentName)
	assert.Equal(t, "Resident One", *got[2].ResidentName)
	assert.Equal(t, "organic", *got[2].WasteType)
}

func TestWasteLogRepositoryEmpty(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)

	got, err := NewWasteLogRepository(db, zap.NewNop()).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
