package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"person-api/internal/apperrors"
	"person-api/internal/domain/entities"
	"person-api/internal/domain/repositories"
)

const personResource = "Person"

// Validator checks a value and returns an *apperrors.ValidationError on bad input.
type Validator interface {
	Struct(s any) error
}

// PersonServiceImpl implements PersonServiceContract on top of a PersonRepositoryContract.
type PersonServiceImpl struct {
	personRepo repositories.PersonRepositoryContract
	validator  Validator
	logger     zerolog.Logger
}

// NewPersonService creates a new instance of PersonServiceImpl.
func NewPersonService(repo repositories.PersonRepositoryContract, validator Validator, logger zerolog.Logger) PersonServiceContract {
	return &PersonServiceImpl{
		personRepo: repo,
		validator:  validator,
		logger:     logger.With().Str("component", "person_service").Logger(),
	}
}

func (s *PersonServiceImpl) FindAll(ctx context.Context) ([]*entities.Person, error) {
	people, err := s.personRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("finding all people: %w", err)
	}
	return people, nil
}

func (s *PersonServiceImpl) FindPage(ctx context.Context, page repositories.PageRequest) (*repositories.PersonPage, error) {
	if page.Page < 0 {
		return nil, apperrors.Invalid("page", "Page must be greater than or equal to 0")
	}
	if page.Size < 1 {
		return nil, apperrors.Invalid("size", "Size must be greater than or equal to 1")
	}
	if page.Page > math.MaxInt/page.Size {
		return nil, apperrors.Invalid("page", "Page is too large for the requested size")
	}

	result, err := s.personRepo.FindPage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("finding people page %d: %w", page.Page, err)
	}
	return result, nil
}

func (s *PersonServiceImpl) FindByID(ctx context.Context, id uint) (*entities.Person, error) {
	person, err := s.personRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrPersonNotFound) {
		return nil, apperrors.NotFound(personResource, id)
	}
	if err != nil {
		return nil, fmt.Errorf("finding person %d: %w", id, err)
	}
	if person == nil {
		// A repository returning (nil, nil) is treated as a miss rather than leaking a nil person.
		return nil, apperrors.NotFound(personResource, id)
	}
	return person, nil
}

func (s *PersonServiceImpl) Create(ctx context.Context, person *entities.Person) (*entities.Person, error) {
	if person == nil {
		return nil, apperrors.Invalid("body", "Request body is mandatory")
	}
	person.ID = 0

	if err := s.validator.Struct(person); err != nil {
		return nil, err
	}

	saved, err := s.personRepo.Save(ctx, person)
	if err != nil {
		return nil, fmt.Errorf("creating person: %w", err)
	}

	s.logger.Info().Uint("person_id", saved.ID).Msg("person created")
	return saved, nil
}

// Update is a full replace: every field of the stored person is overwritten with the
// payload, and the stored id wins over any id carried by the payload.
func (s *PersonServiceImpl) Update(ctx context.Context, id uint, person *entities.Person) (*entities.Person, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperrors.Invalid("body", "Request body is mandatory")
	}

	person.ID = id
	if err := s.validator.Struct(person); err != nil {
		return nil, err
	}

	saved, err := s.personRepo.Save(ctx, person)
	if err != nil {
		return nil, fmt.Errorf("updating person %d: %w", id, err)
	}

	s.logger.Info().Uint("person_id", id).Msg("person updated")
	return saved, nil
}

func (s *PersonServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err := s.personRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("deleting person %d: %w", id, err)
	}

	s.logger.Info().Uint("person_id", id).Msg("person deleted")
	return nil
}

func (s *PersonServiceImpl) ensureExists(ctx context.Context, id uint) error {
	exists, err := s.personRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("checking person %d: %w", id, err)
	}
	if !exists {
		return apperrors.NotFound(personResource, id)
	}
	return nil
}
