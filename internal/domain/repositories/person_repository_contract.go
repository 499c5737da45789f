package repositories

import (
	"context"
	"errors"

	"person-api/internal/domain/entities"
)

// ErrPersonNotFound is returned by FindByID when no row matches.
var ErrPersonNotFound = errors.New("person not found")

// PageRequest selects one page of results. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip for this page. Callers reject
// pages whose offset would overflow int before asking for it.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// PersonPage is one page of people plus the total number of stored rows.
type PersonPage struct {
	Content       []*entities.Person
	Page          int
	Size          int
	TotalElements int64
}

// TotalPages is the number of pages of the current size needed to hold every row.
func (p *PersonPage) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

type PersonRepositoryContract interface {
	FindAll(ctx context.Context) ([]*entities.Person, error)
	FindPage(ctx context.Context, page PageRequest) (*PersonPage, error)
	FindByID(ctx context.Context, id uint) (*entities.Person, error)
	Save(ctx context.Context, person *entities.Person) (*entities.Person, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error
	Delete(ctx context.Context, person *entities.Person) error
}
