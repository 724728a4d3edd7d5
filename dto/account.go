package dto

import (
	"time"

	"github.com/shadowbox-gym/shadowbox_api/model"
	"github.com/shadowbox-gym/shadowbox_api/services/progression"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

// AccountResponse is the client-safe view of an account. It never carries the password hash.
type AccountResponse struct {
	ID           string     `json:"_id" example:"5f0c6a2e-9a8e-4a57-9a77-0d3c1f3e8a11"`
	Username     string     `json:"username" example:"rocky"`
	Email        *string    `json:"email,omitempty" example:"rocky@example.com"`
	XP           int        `json:"xp" example:"40"`
	Level        int        `json:"level" example:"2"`
	Streak       int        `json:"streak" example:"3"`
	Achievements []string   `json:"achievements"`
	LastLogin    *time.Time `json:"lastLogin,omitempty" example:"2025-03-10T15:30:00Z"`
}

func NewAccountResponse(acc *model.Account) AccountResponse {
	achievements := []string(acc.Achievements)
	if achievements == nil {
		achievements = []string{}
	}
	return AccountResponse{
		ID:           acc.ID,
		Username:     acc.Username,
		Email:        acc.Email,
		XP:           acc.XP,
		Level:        acc.Level,
		Streak:       acc.Streak,
		Achievements: achievements,
		LastLogin:    acc.LastLogin,
	}
}

type AccountUpdateResponse struct {
	Message string          `json:"message" example:"Stats updated"`
	User    AccountResponse `json:"user"`
}

// StatUpdateRequest is the PATCH /auth/me body.
type StatUpdateRequest struct {
	Action  string `json:"action" validate:"required,oneof=addXp incrementStreak resetStreak unlockPunch" example:"addXp"`
	Amount  *int   `json:"amount,omitempty" validate:"required_if=Action addXp,omitempty,min=0,max=2147483647" example:"50"`
	PunchID string `json:"punchId,omitempty" validate:"required_if=Action unlockPunch" example:"hook"`
}

func (s StatUpdateRequest) Validate() error {
	return GetValidator().Struct(s)
}

// ToStatUpdate validates the request and converts it to a progression update.
func (s StatUpdateRequest) ToStatUpdate() (progression.StatUpdate, error) {
	if err := s.Validate(); err != nil {
		return nil, shared.NewValidationError("Validation failed", FormatValidationErrors(err))
	}

	switch s.Action {
	case shared.ActionAddXP:
		return progression.AddXPAction{Amount: *s.Amount}, nil
	case shared.ActionIncrementStreak:
		return progression.IncrementStreakAction{}, nil
	case shared.ActionResetStreak:
		return progression.ResetStreakAction{}, nil
	case shared.ActionUnlockPunch:
		return progression.UnlockPunchAction{PunchID: s.PunchID}, nil
	}
	return nil, shared.NewValidationError("Invalid action", nil)
}
