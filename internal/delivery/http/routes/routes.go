package routes

import (
	"job-tracker/internal/database"
	"job-tracker/internal/delivery/http/handler"
	"job-tracker/internal/repository"
	"job-tracker/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	db database.DB
}

func NewRegistry(db database.DB) *Registry {
	return &Registry{db: db}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewRootHandler().RegisterRoutes(app)
	handler.NewHealthHandler(r.db).RegisterRoutes(app)

	jobRepo := repository.NewMongoJobRepository(r.db)
	jobUC := usecase.NewJobUsecase(jobRepo)
	jobsHandler := handler.NewJobsHandler(jobUC)

	api := app.Group("/api")
	jobsHandler.RegisterRoutes(api)
}
