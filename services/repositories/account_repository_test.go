package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shadowbox-gym/shadowbox_api/model"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Account{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string { return &s }

func newAccount(username string) *model.Account {
	return &model.Account{
		Username:     username,
		PasswordHash: "$2a$10$hash-" + username,
		Level:        1,
		UnlockedPunches: model.UnlockList{
			{ContentID: "jab", UnlockedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestCreateAndFind(t *testing.T) {
	r := NewAccountRepository(setupDB(t))
	ctx := context.Background()

	acc := newAccount("rocky")
	acc.Email = strPtr("rocky@example.com")
	require.NoError(t, r.Create(ctx, acc))
	require.NotEmpty(t, acc.ID)

	byID, err := r.FindByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "rocky", byID.Username)
	assert.Empty(t, byID.PasswordHash, "password hash is not selected by default")
	assert.Equal(t, 1, byID.Level)
	assert.Equal(t, []string{"jab"}, byID.UnlockedPunches.IDs())
	assert.Empty(t, byID.UnlockedVideos)

	withPw, err := r.FindByUsername(ctx, "rocky", true)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash-rocky", withPw.PasswordHash)

	noPw, err := r.FindByUsername(ctx, "rocky", false)
	require.NoError(t, err)
	assert.Empty(t, noPw.PasswordHash)

	byEmail, err := r.FindByEmail(ctx, "rocky@example.com")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, byEmail.ID)
}

func TestFind_NotFound(t *testing.T) {
	r := NewAccountRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.FindByID(ctx, "missing")
	require.ErrorIs(t, err, shared.ErrNotFound)

	_, err = r.FindByUsername(ctx, "ghost", true)
	require.ErrorIs(t, err, shared.ErrNotFound)

	_, err = r.FindByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCreate_DuplicateIdentity(t *testing.T) {
	r := NewAccountRepository(setupDB(t))
	ctx := context.Background()

	first := newAccount("rocky")
	first.Email = strPtr("rocky@example.com")
	require.NoError(t, r.Create(ctx, first))

	err := r.Create(ctx, newAccount("rocky"))
	require.ErrorIs(t, err, shared.ErrDuplicateIdentity)

	dupEmail := newAccount("apollo")
	dupEmail.Email = strPtr("rocky@example.com")
	err = r.Create(ctx, dupEmail)
	require.ErrorIs(t, err, shared.ErrDuplicateIdentity)

	// The original row is untouched.
	got, err := r.FindByUsername(ctx, "rocky", true)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "$2a$10$hash-rocky", got.PasswordHash)
}

func TestCreate_AccountsWithoutEmail(t *testing.T) {
	r := NewAccountRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, newAccount("one")))
	require.NoError(t, r.Create(ctx, newAccount("two")))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestUpdate(t *testing.T) {
	r := NewAccountRepository(setupDB(t))
	ctx := context.Background()

	acc := newAccount("rocky")
	require.NoError(t, r.Create(ctx, acc))

	login := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	acc.XP = 40
	acc.Level = 3
	acc.Streak = 5
	acc.LastLogin = &login
	acc.UnlockedPunches = append(acc.UnlockedPunches, model.Unlock{ContentID: "cross", UnlockedAt: login})
	acc.UnlockedVideos = model.UnlockList{{ContentID: "vid-bonus", UnlockedAt: login}}
	acc.Achievements = model.StringList{"first-blood"}

	got, err := r.Update(ctx, acc.ID, model.ProgressPatch(acc))
	require.NoError(t, err)

	assert.Equal(t, 40, got.XP)
	assert.Equal(t, 3, got.Level)
	assert.Equal(t, 5, got.Streak)
	require.NotNil(t, got.LastLogin)
	assert.True(t, login.Equal(*got.LastLogin))
	assert.Equal(t, []string{"jab", "cross"}, got.UnlockedPunches.IDs())
	assert.Equal(t, []string{"vid-bonus"}, got.UnlockedVideos.IDs())
	assert.Equal(t, model.StringList{"first-blood"}, got.Achievements)
	assert.Empty(t, got.PasswordHash)
}

func TestUpdate_PartialPatchKeepsOtherFields(t *testing.T) {
	r := NewAccountRepository(setupDB(t))
	ctx := context.Background()

	acc := newAccount("rocky")
	acc.XP = 70
	require.NoError(t, r.Create(ctx, acc))

	streak := 9
	got, err := r.Update(ctx, acc.ID, model.AccountPatch{Streak: &streak})
	require.NoError(t, err)
	assert.Equal(t, 9, got.Streak)
	assert.Equal(t, 70, got.XP)
}

func TestUpdate_NotFound(t *testing.T) {
	r := NewAccountRepository(setupDB(t))

	xp := 10
	_, err := r.Update(context.Background(), "missing", model.AccountPatch{XP: &xp})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestTopAndRank(t *testing.T) {
	r := NewAccountRepository(setupDB(t))
	ctx := context.Background()

	seed := []struct {
		name              string
		level, xp, streak int
	}{
		{"alpha", 2, 10, 0},
		{"bravo", 3, 0, 1},
		{"charlie", 2, 10, 4},
		{"delta", 2, 10, 4},
		{"echo", 1, 99, 9},
	}
	for _, s := range seed {
		acc := newAccount(s.name)
		acc.Level, acc.XP, acc.Streak = s.level, s.xp, s.streak
		require.NoError(t, r.Create(ctx, acc))
	}

	top, err := r.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "bravo", top[0].Username)
	assert.Equal(t, "charlie", top[1].Username)
	assert.Equal(t, "delta", top[2].Username)
	for _, a := range top {
		assert.Empty(t, a.PasswordHash)
	}

	want := map[string]int{"bravo": 1, "charlie": 2, "delta": 3, "alpha": 4, "echo": 5}
	for name, rank := range want {
		acc, err := r.FindByUsername(ctx, name, false)
		require.NoError(t, err)
		got, err := r.Rank(ctx, acc)
		require.NoError(t, err)
		assert.Equal(t, rank, got, name)
	}
}

func TestAvailability(t *testing.T) {
	r := NewAccountRepository(setupDB(t))
	ctx := context.Background()

	acc := newAccount("rocky")
	acc.Email = strPtr("rocky@example.com")
	require.NoError(t, r.Create(ctx, acc))

	ok, err := r.IsUsernameAvailable(ctx, "rocky")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.IsUsernameAvailable(ctx, "apollo")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.IsEmailAvailable(ctx, "rocky@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
