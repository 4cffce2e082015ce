package handlers_fiber

import (
	"errors"
	"net/http"

	"team-availability/internal/entities"
	"team-availability/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrInvalidAvailability):
		status = http.StatusBadRequest
		code = dto.BADREQUEST
		msg = err.Error()
	case errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		code = dto.NOTFOUND
		msg = err.Error()
	case errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = dto.NOTFOUND
		msg = "team not found"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusBadRequest
		code = dto.TEAMEXISTS
		msg = "team_name already exists"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}
