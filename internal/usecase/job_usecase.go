package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"job-tracker/internal/domain/job"
	"job-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidJobID     = errors.New("invalid job id format")
	ErrDuplicateJob     = errors.New("job already exists")
	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
)

const (
	defaultListLimit   = 50
	defaultSearchLimit = 20

	maxTitleLen    = 200
	maxCompanyLen  = 100
	maxLocationLen = 100
	maxNotesLen    = 500
)

type CreateJobParams struct {
	Title       *string
	Company     *string
	URL         *string
	Platform    *string
	Location    *string
	Description *string
	Status      string
	Notes       *string
}

type ListJobsParams struct {
	Status   string
	Platform string
	Limit    int
	Skip     int
}

type JobUsecase interface {
	Create(ctx context.Context, params CreateJobParams) (*job.Record, error)
	List(ctx context.Context, params ListJobsParams) ([]job.Record, error)
	Get(ctx context.Context, id string) (*job.Record, error)
	Update(ctx context.Context, id string, upd job.Update) (*job.Record, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]job.Record, error)
	Summary(ctx context.Context) (*job.Summary, error)
}

type JobService struct {
	jobs repository.JobRepository
}

func NewJobUsecase(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// Create saves a new record unless one with the same url already exists.
// The existence check and the insert are two separate store calls, so two
// concurrent creates with the same url can both get through.
func (s *JobService) Create(ctx context.Context, params CreateJobParams) (*job.Record, error) {
	existing, err := s.jobs.FindByURL(ctx, params.URL)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateJob
	}

	status := params.Status
	if status == "" {
		status = job.StatusSaved
	}
	now := time.Now().UTC()

	rec := &job.Record{
		Title:       params.Title,
		Company:     params.Company,
		URL:         params.URL,
		Platform:    params.Platform,
		Location:    params.Location,
		Description: params.Description,
		Status:      status,
		Notes:       params.Notes,
		DateSaved:   &now,
	}

	id, err := s.jobs.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context, params ListJobsParams) ([]job.Record, error) {
	limit := params.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative", ErrInvalidInput)
	}
	if params.Skip < 0 {
		return nil, fmt.Errorf("%w: skip must be non-negative", ErrInvalidInput)
	}

	return s.jobs.List(ctx, repository.ListFilter{
		Status:   params.Status,
		Platform: params.Platform,
		Limit:    limit,
		Skip:     params.Skip,
	})
}

func (s *JobService) Get(ctx context.Context, id string) (*job.Record, error) {
	oid, err := parseJobID(id)
	if err != nil {
		return nil, err
	}
	return s.jobs.FindByID(ctx, oid)
}

// Update applies a partial merge over the restricted field subset. Field
// bounds are checked before the store is touched.
func (s *JobService) Update(ctx context.Context, id string, upd job.Update) (*job.Record, error) {
	oid, err := parseJobID(id)
	if err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}

	if err := s.jobs.Update(ctx, oid, upd); err != nil {
		return nil, err
	}
	return s.jobs.FindByID(ctx, oid)
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	oid, err := parseJobID(id)
	if err != nil {
		return err
	}
	return s.jobs.Delete(ctx, oid)
}

func (s *JobService) Search(ctx context.Context, query string, limit int) ([]job.Record, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.jobs.Search(ctx, query, limit)
}

func (s *JobService) Summary(ctx context.Context) (*job.Summary, error) {
	total, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.jobs.CountByField(ctx, "status")
	if err != nil {
		return nil, err
	}
	byPlatform, err := s.jobs.CountByField(ctx, "platform")
	if err != nil {
		return nil, err
	}

	return &job.Summary{
		TotalJobs:       total,
		StatusBreakdown: byStatus,
		Platforms:       byPlatform,
	}, nil
}

func parseJobID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, ErrInvalidJobID
	}
	return oid, nil
}

func validateUpdate(upd job.Update) error {
	if upd.Title != nil && (len(*upd.Title) == 0 || len(*upd.Title) > maxTitleLen) {
		return fmt.Errorf("%w: title must be between 1 and %d characters", ErrInvalidInput, maxTitleLen)
	}
	if upd.Company != nil && (len(*upd.Company) == 0 || len(*upd.Company) > maxCompanyLen) {
		return fmt.Errorf("%w: company must be between 1 and %d characters", ErrInvalidInput, maxCompanyLen)
	}
	if upd.Location != nil && len(*upd.Location) > maxLocationLen {
		return fmt.Errorf("%w: location must be at most %d characters", ErrInvalidInput, maxLocationLen)
	}
	if upd.Notes != nil && len(*upd.Notes) > maxNotesLen {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, maxNotesLen)
	}
	return nil
}
