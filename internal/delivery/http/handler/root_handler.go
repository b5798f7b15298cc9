package handler

import (
	"job-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Root)
}

func (h *RootHandler) Root(c fiber.Ctx) error {
	return response.Message(c, fiber.StatusOK, "Job Tracker API is running!")
}
