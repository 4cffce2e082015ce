package handlers_fiber

import (
	"net/http"
	"strings"

	"team-availability/internal/mapper"
	"team-availability/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostTeamAdd creates a team from existing members.
func (h *Handler) PostTeamAdd(c *fiber.Ctx) error {
	var body dto.PostTeamAddJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.BADREQUEST, "invalid body"))
	}
	body.TeamName = strings.TrimSpace(body.TeamName)

	team, err := h.uc.CreateTeam(c.Context(), mapper.FromDTOTeam(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Team dto.Team `json:"team"`
	}{Team: mapper.ToDTOTeam(*team)})
}

// GetTeamGet returns team with member ids by name.
func (h *Handler) GetTeamGet(c *fiber.Ctx) error {
	var params dto.GetTeamGetParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.BADREQUEST, "invalid query"))
	}

	team, err := h.uc.Team(c.Context(), params.TeamName)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeam(*team))
}
