// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"team-availability/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the availability API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterHandlers mounts every API route on router.
func RegisterHandlers(router fiber.Router, h *Handler) {
	router.Get("/availability", h.GetAvailability)
	router.Get("/availability/report", h.GetAvailabilityReport)
	router.Get("/team/availability", h.GetTeamAvailability)
	router.Post("/team/add", h.PostTeamAdd)
	router.Get("/team/get", h.GetTeamGet)
	router.Post("/members/set", h.PostMembersSet)
	router.Get("/members/get", h.GetMembersGet)
}
