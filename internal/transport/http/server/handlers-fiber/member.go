package handlers_fiber

import (
	"net/http"

	"team-availability/internal/mapper"
	"team-availability/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostMembersSet creates or replaces a member's weekly availability.
func (h *Handler) PostMembersSet(c *fiber.Ctx) error {
	var body dto.PostMembersSetJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.BADREQUEST, "invalid body"))
	}

	member, err := h.uc.SetMemberAvailability(c.Context(), mapper.FromDTOMember(body))
	if err != nil {
		h.log.Errorw("failed to set member availability", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Member dto.Member `json:"member"`
	}{Member: mapper.ToDTOMember(*member)}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetMembersGet returns a member by id.
func (h *Handler) GetMembersGet(c *fiber.Ctx) error {
	var params dto.GetMembersGetParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.BADREQUEST, "invalid query"))
	}

	member, err := h.uc.Member(c.Context(), params.MemberId)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOMember(*member))
}
