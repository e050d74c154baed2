package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/LeoNarD1812/backendpruebas/internal/models"
	appErrors "github.com/LeoNarD1812/backendpruebas/pkg/errors"
)

type personRepository interface {
	FindByID(ctx context.Context, id string) (*models.Person, error)
	List(ctx context.Context, filter models.PersonFilter) ([]models.Person, int, error)
	Create(ctx context.Context, person *models.Person) error
}

// CreatePersonRequest is the person creation payload.
type CreatePersonRequest struct {
	FullName           string  `json:"full_name" validate:"required"`
	DocumentNumber     string  `json:"document_number" validate:"required"`
	InstitutionalEmail string  `json:"institutional_email" validate:"required,email"`
	PersonalEmail      *string `json:"personal_email" validate:"omitempty,email"`
	StudentCode        *string `json:"student_code"`
	Kind               string  `json:"kind" validate:"required"`
}

// PersonService manages the people catalogue.
type PersonService struct {
	repo      personRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPersonService constructs the person service.
func NewPersonService(repo personRepository, validate *validator.Validate, logger *zap.Logger) *PersonService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersonService{repo: repo, validator: validate, logger: logger}
}

// Get returns a person by ID.
func (s *PersonService) Get(ctx context.Context, id string) (*models.Person, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "person id is required")
	}
	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "person not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load person")
	}
	return person, nil
}

// List returns people matching the filter plus pagination metadata.
func (s *PersonService) List(ctx context.Context, filter models.PersonFilter) ([]models.Person, *models.Pagination, error) {
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown person kind")
	}
	people, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list people")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return people, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Create registers a new person.
func (s *PersonService) Create(ctx context.Context, req CreatePersonRequest) (*models.Person, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid person payload")
	}
	kind := models.PersonKind(req.Kind)
	if !kind.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown person kind")
	}

	person := &models.Person{
		FullName:           req.FullName,
		DocumentNumber:     req.DocumentNumber,
		InstitutionalEmail: req.InstitutionalEmail,
		PersonalEmail:      req.PersonalEmail,
		StudentCode:        req.StudentCode,
		Kind:               kind,
	}
	if err := s.repo.Create(ctx, person); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create person")
	}

	s.logger.Info("person created", zap.String("person_id", person.ID))
	return person, nil
}
