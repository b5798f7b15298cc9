package handler

import (
	"errors"
	"net/url"
	"strconv"

	"job-tracker/internal/delivery/http/dto"
	"job-tracker/internal/delivery/http/middleware"
	"job-tracker/internal/domain/job"
	"job-tracker/internal/pkg/response"
	"job-tracker/internal/repository"
	"job-tracker/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)

	// Static segments first so /:id cannot shadow them.
	grp.Get("/stats/summary", h.Summary)
	grp.Get("/search/:query", h.Search)

	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	rec, err := h.uc.Create(c.Context(), usecase.CreateJobParams{
		Title:       req.Title,
		Company:     req.Company,
		URL:         req.URL,
		Platform:    req.Platform,
		Location:    req.Location,
		Description: req.Description,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.FromRecord(rec))
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 50)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit parameter", err)
	}
	skip, err := parseQueryIntStrict(c, "skip", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skip parameter", err)
	}

	recs, err := h.uc.List(c.Context(), usecase.ListJobsParams{
		Status:   c.Query("status"),
		Platform: c.Query("platform"),
		Limit:    limit,
		Skip:     skip,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.FromRecords(recs))
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	rec, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromRecord(rec))
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	rec, err := h.uc.Update(c.Context(), c.Params("id"), job.Update{
		Title:    req.Title,
		Company:  req.Company,
		Location: req.Location,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.FromRecord(rec))
}

func (h *JobsHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Message(c, fiber.StatusOK, "Job deleted successfully")
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	query := c.Params("query")
	if dec, err := url.PathUnescape(query); err == nil {
		query = dec
	}

	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit parameter", err)
	}

	recs, err := h.uc.Search(c.Context(), query, limit)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.FromRecords(recs))
}

func (h *JobsHandler) Summary(c fiber.Ctx) error {
	sum, err := h.uc.Summary(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.SummaryResponse{
		TotalJobs:       sum.TotalJobs,
		StatusBreakdown: sum.StatusBreakdown,
		Platforms:       sum.Platforms,
	})
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func mapJobUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job ID format", err)
	case errors.Is(err, usecase.ErrDuplicateJob):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job already exists", err)
	case errors.Is(err, usecase.ErrNoFieldsToUpdate):
		return middleware.NewAppError(fiber.StatusBadRequest, "No valid fields to update", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
	case errors.Is(err, repository.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, err.Error(), err)
	}
}
