package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbox-gym/shadowbox_api/model"
	"github.com/shadowbox-gym/shadowbox_api/services/progression"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

func intPtr(v int) *int { return &v }

func TestRegisterRequest_Normalize(t *testing.T) {
	req := RegisterRequest{Username: "  RockyB ", Password: " keep spaces ", Email: " Rocky@Example.COM "}
	req.Normalize()

	assert.Equal(t, "rockyb", req.Username)
	assert.Equal(t, "rocky@example.com", req.Email)
	assert.Equal(t, " keep spaces ", req.Password)
}

func TestFormatValidationErrors(t *testing.T) {
	err := RegisterRequest{Username: "ab", Password: "", Email: "bad"}.Validate()
	require.Error(t, err)

	fields := FormatValidationErrors(err)
	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Message
	}

	assert.Equal(t, "username must be at least 3 characters", byField["username"])
	assert.Equal(t, "password is required", byField["password"])
	assert.Equal(t, "Invalid email format", byField["email"])

	assert.Empty(t, FormatValidationErrors(assert.AnError))
}

func TestStatUpdateRequest_ToStatUpdate(t *testing.T) {
	tests := []struct {
		name string
		req  StatUpdateRequest
		want progression.StatUpdate
	}{
		{"add xp", StatUpdateRequest{Action: shared.ActionAddXP, Amount: intPtr(40)}, progression.AddXPAction{Amount: 40}},
		{"increment", StatUpdateRequest{Action: shared.ActionIncrementStreak}, progression.IncrementStreakAction{}},
		{"reset", StatUpdateRequest{Action: shared.ActionResetStreak}, progression.ResetStreakAction{}},
		{"unlock", StatUpdateRequest{Action: shared.ActionUnlockPunch, PunchID: "hook"}, progression.UnlockPunchAction{PunchID: "hook"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToStatUpdate()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatUpdateRequest_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		req   StatUpdateRequest
		field string
	}{
		{"no action", StatUpdateRequest{}, "action"},
		{"bad action", StatUpdateRequest{Action: "levelUp"}, "action"},
		{"missing amount", StatUpdateRequest{Action: shared.ActionAddXP}, "amount"},
		{"negative amount", StatUpdateRequest{Action: shared.ActionAddXP, Amount: intPtr(-1)}, "amount"},
		{"missing punch", StatUpdateRequest{Action: shared.ActionUnlockPunch}, "punchId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToStatUpdate()
			require.ErrorIs(t, err, shared.ErrValidation)

			appErr, ok := shared.GetAppError(err)
			require.True(t, ok)
			fields, ok := appErr.Data.([]ValidationError)
			require.True(t, ok)
			require.NotEmpty(t, fields)
			assert.Equal(t, tt.field, fields[0].Field)
		})
	}
}

func TestLeaderboardRequest_EffectiveLimit(t *testing.T) {
	assert.Equal(t, DefaultLeaderboardLimit, LeaderboardRequest{}.EffectiveLimit())
	assert.Equal(t, 10, LeaderboardRequest{Limit: 10}.EffectiveLimit())
	assert.Equal(t, MaxLeaderboardLimit, LeaderboardRequest{Limit: 1000}.EffectiveLimit())

	assert.NoError(t, LeaderboardRequest{Limit: 100}.Validate())
	assert.Error(t, LeaderboardRequest{Limit: 101}.Validate())
}

func TestNewAccountResponse_OmitsSecrets(t *testing.T) {
	acc := &model.Account{ID: "id-1", Username: "rocky", PasswordHash: "$2a$10$secret", Level: 1}

	resp := NewAccountResponse(acc)
	assert.NotNil(t, resp.Achievements)

	b, err := sonic.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "email")
	assert.Contains(t, string(b), `"achievements":[]`)
	assert.Contains(t, string(b), `"_id":"id-1"`)
}
