package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbox-gym/shadowbox_api/dto"
	"github.com/shadowbox-gym/shadowbox_api/model"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

func intPtr(v int) *int { return &v }

func TestApplyStatUpdate_AddXP(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	acc := register(t, env, "rocky", "password-1")

	updated, err := env.users.ApplyStatUpdate(ctx, acc, dto.StatUpdateRequest{Action: shared.ActionAddXP, Amount: intPtr(250)})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Level)
	assert.Equal(t, 150, updated.XP)
	assert.Equal(t, []string{"jab", "cross"}, updated.UnlockedPunches.IDs())

	stored, err := env.repo.FindByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Level)
	assert.Equal(t, 150, stored.XP)
	assert.Empty(t, stored.PasswordHash)

	// Zero is a no-op but still valid.
	updated, err = env.users.ApplyStatUpdate(ctx, stored, dto.StatUpdateRequest{Action: shared.ActionAddXP, Amount: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 150, updated.XP)
}

func TestApplyStatUpdate_Streak(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	acc := register(t, env, "rocky", "password-1")

	updated, err := env.users.ApplyStatUpdate(ctx, acc, dto.StatUpdateRequest{Action: shared.ActionIncrementStreak})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Streak)

	updated, err = env.users.ApplyStatUpdate(ctx, updated, dto.StatUpdateRequest{Action: shared.ActionIncrementStreak})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Streak)

	updated, err = env.users.ApplyStatUpdate(ctx, updated, dto.StatUpdateRequest{Action: shared.ActionResetStreak})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Streak)
}

func TestApplyStatUpdate_UnlockPunch(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	acc := register(t, env, "rocky", "password-1")

	updated, err := env.users.ApplyStatUpdate(ctx, acc, dto.StatUpdateRequest{Action: shared.ActionUnlockPunch, PunchID: "hook"})
	require.NoError(t, err)
	assert.Equal(t, []string{"jab", "hook"}, updated.UnlockedPunches.IDs())

	updated, err = env.users.ApplyStatUpdate(ctx, updated, dto.StatUpdateRequest{Action: shared.ActionUnlockPunch, PunchID: "hook"})
	require.NoError(t, err)
	assert.Len(t, updated.UnlockedPunches, 2)
}

func TestApplyStatUpdate_Invalid(t *testing.T) {
	env := newTestEnv(t, false)
	acc := register(t, env, "rocky", "password-1")

	tests := []struct {
		name string
		req  dto.StatUpdateRequest
	}{
		{"missing action", dto.StatUpdateRequest{}},
		{"unknown action", dto.StatUpdateRequest{Action: "deleteAccount"}},
		{"addXp without amount", dto.StatUpdateRequest{Action: shared.ActionAddXP}},
		{"negative amount", dto.StatUpdateRequest{Action: shared.ActionAddXP, Amount: intPtr(-5)}},
		{"unlockPunch without id", dto.StatUpdateRequest{Action: shared.ActionUnlockPunch}},
		{"unknown punch", dto.StatUpdateRequest{Action: shared.ActionUnlockPunch, PunchID: "haymaker"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.users.ApplyStatUpdate(context.Background(), acc, tt.req)
			requireAppError(t, err, http.StatusBadRequest, shared.ErrValidation)
		})
	}

	stored, err := env.repo.FindByID(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.XP)
	assert.Equal(t, []string{"jab"}, stored.UnlockedPunches.IDs())
}

func TestApplyStatUpdate_AccountGone(t *testing.T) {
	env := newTestEnv(t, false)
	acc := register(t, env, "rocky", "password-1")
	require.NoError(t, env.db.Delete(&model.Account{}, "id = ?", acc.ID).Error)

	_, err := env.users.ApplyStatUpdate(context.Background(), acc, dto.StatUpdateRequest{Action: shared.ActionIncrementStreak})
	requireAppError(t, err, http.StatusNotFound, shared.ErrNotFound)
}

func TestGetUserProfile(t *testing.T) {
	env := newTestEnv(t, false)
	acc := register(t, env, "rocky", "password-1")

	profile := env.users.GetUserProfile(acc)
	assert.Equal(t, acc.ID, profile.ID)
	assert.Equal(t, "rocky", profile.Username)
	assert.Equal(t, 1, profile.Level)
	assert.NotNil(t, profile.Achievements)
}

func TestGetLeaderboard(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	xp := map[string]int{"apollo": 420, "clubber": 310, "drago": 90, "rocky": 0}
	accounts := map[string]*model.Account{}
	for name, amount := range xp {
		acc := register(t, env, name, "password-1")
		if amount > 0 {
			var err error
			acc, err = env.users.ApplyStatUpdate(ctx, acc, dto.StatUpdateRequest{Action: shared.ActionAddXP, Amount: intPtr(amount)})
			require.NoError(t, err)
		}
		accounts[name] = acc
	}

	resp, err := env.users.GetLeaderboard(ctx, dto.LeaderboardRequest{Limit: 2}, accounts["rocky"])
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "apollo", resp.Entries[0].Username)
	assert.Equal(t, 1, resp.Entries[0].Rank)
	assert.Equal(t, 3, resp.Entries[0].Level)
	assert.Equal(t, "clubber", resp.Entries[1].Username)
	require.NotNil(t, resp.CurrentUser)
	assert.Equal(t, 4, resp.CurrentUser.Rank)

	resp, err = env.users.GetLeaderboard(ctx, dto.LeaderboardRequest{}, accounts["clubber"])
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 4)
	require.NotNil(t, resp.CurrentUser)
	assert.Equal(t, 2, resp.CurrentUser.Rank)

	resp, err = env.users.GetLeaderboard(ctx, dto.LeaderboardRequest{}, nil)
	require.NoError(t, err)
	assert.Nil(t, resp.CurrentUser)

	_, err = env.users.GetLeaderboard(ctx, dto.LeaderboardRequest{Limit: 500}, nil)
	requireAppError(t, err, http.StatusBadRequest, shared.ErrValidation)
}
