package repository

import (
	"context"
	"testing"

	"waste-pickup/internal/data/entity"
	"waste-pickup/internal/testutil"
	"waste-pickup/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBootstrapSeedsOnce(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	ctx := context.Background()
	seed := utils.SeedConfig{Enabled: true}

	require.NoError(t, Bootstrap(ctx, db, seed, zap.NewNop()))
	assert.EqualValues(t, 2, testutil.Count(t, db, "users"))

	var admins, residents int
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'admin'`).Scan(&admins))
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'resident'`).Scan(&residents))
	assert.Equal(t, 1, admins)
	assert.Equal(t, 1, residents)

	require.NoError(t, Bootstrap(ctx, db, seed, zap.NewNop()))
	assert.EqualValues(t, 2, testutil.Count(t, db, "users"), "second boot must not duplicate seed rows")
}

func TestBootstrapSkipsNonEmptyTable(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	ctx := context.Background()

	testutil.Exec(t, db, `INSERT INTO users (name, house_number, username, password, role) VALUES (?, ?, ?, ?, ?)`,
		"Someone", "H-7", "someone", "pw", "resident")

	inserted, err := SeedUsers(ctx, db, DefaultSeedUsers())
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.EqualValues(t, 1, testutil.Count(t, db, "users"))
}

func TestBootstrapSeedDisabled(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)

	require.NoError(t, Bootstrap(context.Background(), db, utils.SeedConfig{Enabled: false}, zap.NewNop()))
	assert.EqualValues(t, 0, testutil.Count(t, db, "users"))
}

func TestBootstrapHashedSeedPasswords(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, Bootstrap(ctx, db, utils.SeedConfig{Enabled: true, HashPasswords: true}, zap.NewNop()))

	users := NewUserRepository(db, zap.NewNop())

	stored, err := users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, utils.IsBcryptHash(stored.Password))

	admin, err := users.FindByCredentials(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
}

func TestSeedUsersRollsBackOnFailure(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)

	dup := DefaultSeedUsers()
	dup[1].Username = dup[0].Username

	_, err := SeedUsers(context.Background(), db, dup)
	require.Error(t, err)
	assert.EqualValues(t, 0, testutil.Count(t, db, "users"), "partial seed must not be committed")
}
