package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shadowbox-gym/shadowbox_api/dto"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

type LeaderboardHandler struct {
	userSvc UserServiceInterface
}

func NewLeaderboardHandler(userSvc UserServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		userSvc: userSvc,
	}
}

// @Summary Leaderboard
// @Description Top accounts by level, XP and streak. The caller's own rank is included when a valid token is sent.
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Limit results (default 50, max 100)"
// @Success 200 {object} shared.Response{data=dto.LeaderboardResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	var req dto.LeaderboardRequest
	if err := c.QueryParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid query")
	}

	current, _ := shared.GetAccount(c)
	leaderboard, err := h.userSvc.GetLeaderboard(c.UserContext(), req, current)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, leaderboard)
}
