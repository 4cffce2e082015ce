package handlers_fiber

import (
	"bytes"
	"net/http"

	"team-availability/internal/availability"
	"team-availability/internal/mapper"
	"team-availability/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetAvailability returns aggregated availability of every team.
func (h *Handler) GetAvailability(c *fiber.Ctx) error {
	res, err := h.uc.TeamAvailability(c.Context())
	if err != nil {
		h.log.Errorw("failed to get team availability", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamAvailabilityList(res))
}

// GetAvailabilityReport returns the plain text report, one line per team.
func (h *Handler) GetAvailabilityReport(c *fiber.Ctx) error {
	res, err := h.uc.TeamAvailability(c.Context())
	if err != nil {
		h.log.Errorw("failed to get team availability", "error", err.Error())
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := availability.Format(&buf, res); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

// GetTeamAvailability returns aggregated availability of a single team.
func (h *Handler) GetTeamAvailability(c *fiber.Ctx) error {
	var params dto.GetTeamAvailabilityParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.BADREQUEST, "invalid query"))
	}

	res, err := h.uc.TeamAvailabilityByName(c.Context(), params.TeamName)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamAvailability(params.TeamName, res))
}
