package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shadowbox-gym/shadowbox_api/dto"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

type AuthHandler struct {
	authSvc AuthServiceInterface
	userSvc UserServiceInterface
}

func NewAuthHandler(authSvc AuthServiceInterface, userSvc UserServiceInterface) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
		userSvc: userSvc,
	}
}

// @Summary Register a new account
// @Description Create an account, open a session and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	acc, session, err := h.authSvc.Register(c.UserContext(), req)
	if err != nil {
		return err
	}

	c.Cookie(h.authSvc.SessionCookie(session))
	return shared.RenderJSON(c, http.StatusCreated, dto.AuthResponse{
		Message:   "User created",
		User:      h.userSvc.GetUserProfile(acc),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// @Summary Login
// @Description Check credentials, update the daily streak and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	acc, session, err := h.authSvc.Login(c.UserContext(), req)
	if err != nil {
		return err
	}

	c.Cookie(h.authSvc.SessionCookie(session))
	return shared.RenderJSON(c, http.StatusOK, dto.AuthResponse{
		Message:   "Login successful",
		User:      h.userSvc.GetUserProfile(acc),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// @Summary Logout
// @Description Revoke the current session token and clear the session cookie
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authSvc.Logout(c.UserContext(), shared.GetToken(c)); err != nil {
		return err
	}

	c.Cookie(h.authSvc.ClearedSessionCookie())
	return shared.RenderJSON(c, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// @Summary Current account
// @Description Return the authenticated account without its password hash
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	acc, err := shared.RequireAccount(c)
	if err != nil {
		return err
	}
	return shared.RenderJSON(c, http.StatusOK, h.userSvc.GetUserProfile(acc))
}

// @Summary Update stats
// @Description Apply one progression action: addXp, incrementStreak, resetStreak or unlockPunch
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Param statUpdateRequest body dto.StatUpdateRequest true "Stat update"
// @Success 200 {object} dto.AccountUpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/me [patch]
func (h *AuthHandler) UpdateStats(c *fiber.Ctx) error {
	acc, err := shared.RequireAccount(c)
	if err != nil {
		return err
	}

	var req dto.StatUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	updated, err := h.userSvc.ApplyStatUpdate(c.UserContext(), acc, req)
	if err != nil {
		return err
	}

	return shared.RenderJSON(c, http.StatusOK, dto.AccountUpdateResponse{
		Message: "Stats updated",
		User:    h.userSvc.GetUserProfile(updated),
	})
}
