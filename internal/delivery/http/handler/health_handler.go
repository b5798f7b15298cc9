package handler

import (
	"job-tracker/internal/database"
	"job-tracker/internal/delivery/http/middleware"
	"job-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type healthBody struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

// Check reports 503 rather than 500 on a store fault so callers can tell
// "dependency down" apart from a handler bug.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Database connection failed: "+err.Error(), err)
	}
	return response.JSON(c, fiber.StatusOK, healthBody{Status: "healthy", Database: "connected"})
}
