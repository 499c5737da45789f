package services

import (
	"context"

	"person-api/internal/domain/entities"
	"person-api/internal/domain/repositories"
)

// PersonServiceContract defines the operations on the Person resource.
// Every lookup by id either returns the person or an *apperrors.NotFoundError.
type PersonServiceContract interface {
	// FindAll returns every stored person ordered by id.
	FindAll(ctx context.Context) ([]*entities.Person, error)
	// FindPage returns one page of people with the total count.
	FindPage(ctx context.Context, page repositories.PageRequest) (*repositories.PersonPage, error)
	// FindByID returns the person stored under id.
	FindByID(ctx context.Context, id uint) (*entities.Person, error)
	// Create validates and stores a new person; storage assigns the id.
	Create(ctx context.Context, person *entities.Person) (*entities.Person, error)
	// Update replaces every field of the person stored under id.
	Update(ctx context.Context, id uint, person *entities.Person) (*entities.Person, error)
	// Delete removes the person stored under id.
	Delete(ctx context.Context, id uint) error
}
