package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/shadowbox-gym/shadowbox_api/dto"
	"github.com/shadowbox-gym/shadowbox_api/model"
	"github.com/shadowbox-gym/shadowbox_api/services/training"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*model.Account, *dto.Session, error)
	Login(ctx context.Context, req dto.LoginRequest) (*model.Account, *dto.Session, error)
	Logout(ctx context.Context, token string) error
	SessionCookie(session *dto.Session) *fiber.Cookie
	ClearedSessionCookie() *fiber.Cookie
}

type UserServiceInterface interface {
	GetUserProfile(acc *model.Account) dto.AccountResponse
	ApplyStatUpdate(ctx context.Context, acc *model.Account, req dto.StatUpdateRequest) (*model.Account, error)
	GetLeaderboard(ctx context.Context, req dto.LeaderboardRequest, current *model.Account) (*dto.LeaderboardResponse, error)
}

type ContentServiceInterface interface {
	GetPunchCatalog() dto.CatalogResponse
	GetUnlockedContent(ctx context.Context, acc *model.Account) (*dto.UnlockedContentResponse, error)
	ParseCombo(req dto.ComboRequest) dto.ComboResponse
	GetMoves() []training.Move
}
