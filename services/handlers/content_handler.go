package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shadowbox-gym/shadowbox_api/dto"
	"github.com/shadowbox-gym/shadowbox_api/shared"
)

type ContentHandler struct {
	contentSvc ContentServiceInterface
}

func NewContentHandler(contentSvc ContentServiceInterface) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

// @Summary Punch catalog
// @Description List every punch in unlock order with its training videos
// @Tags content
// @Produce json
// @Success 200 {object} shared.Response{data=dto.CatalogResponse}
// @Router /content/punches [get]
func (h *ContentHandler) GetPunches(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=60")
	return shared.ResponseOK(c, h.contentSvc.GetPunchCatalog())
}

// @Summary Unlocked content
// @Description Punches and videos available to the authenticated account, with signed media links when storage is configured
// @Tags content
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.UnlockedContentResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /content/unlocked [get]
func (h *ContentHandler) GetUnlocked(c *fiber.Ctx) error {
	acc, err := shared.RequireAccount(c)
	if err != nil {
		return err
	}

	content, err := h.contentSvc.GetUnlockedContent(c.UserContext(), acc)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, content)
}

// @Summary Training moves
// @Description List punch and defence codes used in combos
// @Tags training
// @Produce json
// @Success 200 {object} shared.Response{data=[]training.Move}
// @Router /training/moves [get]
func (h *ContentHandler) GetMoves(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=60")
	return shared.ResponseOK(c, h.contentSvc.GetMoves())
}

// @Summary Parse combo
// @Description Turn a combo string like "1-2-3" or "Jab, Cross" into move codes
// @Tags training
// @Produce json
// @Param combo query string false "Combo string (default 1-2)"
// @Success 200 {object} shared.Response{data=dto.ComboResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /training/combo [get]
func (h *ContentHandler) ParseCombo(c *fiber.Ctx) error {
	var req dto.ComboRequest
	if err := c.QueryParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid query")
	}
	if err := req.Validate(); err != nil {
		return shared.NewValidationError("Validation failed", dto.FormatValidationErrors(err))
	}

	return shared.ResponseOK(c, h.contentSvc.ParseCombo(req))
}
