package services

import (
	"context"
	"errors"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/shadowbox-gym/shadowbox_api/dto"
	"github.com/shadowbox-gym/shadowbox_api/model"
	"github.com/shadowbox-gym/shadowbox_api/services/progression"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

type UserService struct {
	appContext.DefaultService

	accounts      AccountStore
	contentSvc    *ContentService
	monitoringSvc *MonitoringService
	now           func() time.Time
}

const USER_SVC = "user_svc"

func NewUserService(accounts AccountStore, contentSvc *ContentService) *UserService {
	return &UserService{accounts: accounts, contentSvc: contentSvc, now: time.Now}
}

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *appContext.Context) error {
	svc.contentSvc = ctx.Service(CONTENT_SVC).(*ContentService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	if svc.accounts == nil {
		svc.accounts = svc.Service(DATABASE_SVC).(*DatabaseService).Accounts()
	}
	return nil
}

// ==================== PROFILE ====================

func (svc *UserService) GetUserProfile(acc *model.Account) dto.AccountResponse {
	return dto.NewAccountResponse(acc)
}

// ApplyStatUpdate runs one PATCH action against acc and persists the result.
func (svc *UserService) ApplyStatUpdate(ctx context.Context, acc *model.Account, req dto.StatUpdateRequest) (*model.Account, error) {
	update, err := req.ToStatUpdate()
	if err != nil {
		return nil, err
	}

	outcome, err := progression.Apply(acc, update, svc.contentSvc.Catalog(), svc.now())
	switch {
	case errors.Is(err, progression.ErrInvalidAmount):
		return nil, shared.NewValidationError("Invalid amount", []dto.ValidationError{{Field: "amount", Message: err.Error()}})
	case errors.Is(err, progression.ErrUnknownPunch):
		return nil, shared.NewValidationError("Unknown punch", []dto.ValidationError{{Field: "punchId", Message: err.Error()}})
	case err != nil:
		return nil, shared.NewBadRequestError(err, "Invalid action")
	}

	updated, err := svc.accounts.Update(ctx, acc.ID, model.ProgressPatch(acc))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("User not found")
		}
		return nil, shared.NewInternalError(err)
	}

	if outcome.LevelsGained > 0 {
		svc.monitoringSvc.RecordLevelUps(outcome.LevelsGained)
		log.WithFields(log.Fields{
			"account_id": acc.ID,
			"level":      updated.Level,
			"gained":     outcome.LevelsGained,
		}).Info("Account levelled up")
	}
	return updated, nil
}

// ==================== LEADERBOARD ====================

func (svc *UserService) GetLeaderboard(ctx context.Context, req dto.LeaderboardRequest, current *model.Account) (*dto.LeaderboardResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError("Validation failed", dto.FormatValidationErrors(err))
	}

	accounts, err := svc.accounts.Top(ctx, req.EffectiveLimit())
	if err != nil {
		return nil, shared.NewInternalError(err)
	}

	resp := &dto.LeaderboardResponse{Entries: make([]dto.LeaderboardEntry, 0, len(accounts))}
	for i := range accounts {
		resp.Entries = append(resp.Entries, leaderboardEntry(&accounts[i], i+1))
		if current != nil && accounts[i].ID == current.ID {
			entry := resp.Entries[i]
			resp.CurrentUser = &entry
		}
	}

	if current != nil && resp.CurrentUser == nil {
		rank, err := svc.accounts.Rank(ctx, current)
		if err != nil {
			return nil, shared.NewInternalError(err)
		}
		entry := leaderboardEntry(current, rank)
		resp.CurrentUser = &entry
	}
	return resp, nil
}

func leaderboardEntry(acc *model.Account, rank int) dto.LeaderboardEntry {
	return dto.LeaderboardEntry{
		Rank:     rank,
		ID:       acc.ID,
		Username: acc.Username,
		Level:    acc.Level,
		XP:       acc.XP,
		Streak:   acc.Streak,
	}
}
