package handlers

import (
	"context"
	"errors"
	"sort"
	"sync"

	"person-api/internal/domain/entities"
	"person-api/internal/domain/repositories"
	"person-api/internal/services"
)

var _ repositories.PersonRepositoryContract = (*memoryPersonRepository)(nil)

// memoryPersonRepository stores people in a map and hands out sequential ids
// the way the people table's serial column does.
type memoryPersonRepository struct {
	mu     sync.Mutex
	nextID uint
	people map[uint]entities.Person
}

func newMemoryPersonRepository() *memoryPersonRepository {
	return &memoryPersonRepository{nextID: 1, people: map[uint]entities.Person{}}
}

func (r *memoryPersonRepository) sorted() []*entities.Person {
	out := make([]*entities.Person, 0, len(r.people))
	for _, p := range r.people {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memoryPersonRepository) FindAll(ctx context.Context) ([]*entities.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(), nil
}

func (r *memoryPersonRepository) FindPage(ctx context.Context, page repositories.PageRequest) (*repositories.PersonPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sorted()
	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Size
	if end > len(all) {
		end = len(all)
	}
	return &repositories.PersonPage{
		Content:       all[start:end],
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: int64(len(all)),
	}, nil
}

func (r *memoryPersonRepository) FindByID(ctx context.Context, id uint) (*entities.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.people[id]
	if !ok {
		return nil, repositories.ErrPersonNotFound
	}
	return &p, nil
}

func (r *memoryPersonRepository) Save(ctx context.Context, person *entities.Person) (*entities.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if person.ID == 0 {
		person.ID = r.nextID
		r.nextID++
	}
	r.people[person.ID] = *person
	saved := *person
	return &saved, nil
}

func (r *memoryPersonRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.people[id]
	return ok, nil
}

func (r *memoryPersonRepository) DeleteByID(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.people, id)
	return nil
}

func (r *memoryPersonRepository) Delete(ctx context.Context, person *entities.Person) error {
	if person == nil {
		return errors.New("nil person")
	}
	return r.DeleteByID(ctx, person.ID)
}

func (r *memoryPersonRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.people)
}

var _ services.PersonServiceContract = (*failingPersonService)(nil)

// failingPersonService fails every call with err.
type failingPersonService struct {
	err error
}

func (s *failingPersonService) FindAll(ctx context.Context) ([]*entities.Person, error) {
	return nil, s.err
}

func (s *failingPersonService) FindPage(ctx context.Context, page repositories.PageRequest) (*repositories.PersonPage, error) {
	return nil, s.err
}

func (s *failingPersonService) FindByID(ctx context.Context, id uint) (*entities.Person, error) {
	return nil, s.err
}

func (s *failingPersonService) Create(ctx context.Context, person *entities.Person) (*entities.Person, error) {
	return nil, s.err
}

func (s *failingPersonService) Update(ctx context.Context, id uint, person *entities.Person) (*entities.Person, error) {
	return nil, s.err
}

func (s *failingPersonService) Delete(ctx context.Context, id uint) error {
	return s.err
}
