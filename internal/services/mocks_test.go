package services

import (
	"context"
	"errors"
	"sync/atomic"

	"person-api/internal/domain/entities"
	"person-api/internal/domain/repositories"
)

// --- MockPersonRepository ---
// Compile-time check to ensure MockPersonRepository implements PersonRepositoryContract
var _ repositories.PersonRepositoryContract = (*MockPersonRepository)(nil)

// MockPersonRepository is a mock implementation of PersonRepositoryContract.
type MockPersonRepository struct {
	FindAllFunc    func(ctx context.Context) ([]*entities.Person, error)
	FindPageFunc   func(ctx context.Context, page repositories.PageRequest) (*repositories.PersonPage, error)
	FindByIDFunc   func(ctx context.Context, id uint) (*entities.Person, error)
	SaveFunc       func(ctx context.Context, person *entities.Person) (*entities.Person, error)
	ExistsByIDFunc func(ctx context.Context, id uint) (bool, error)
	DeleteByIDFunc func(ctx context.Context, id uint) error
	DeleteFunc     func(ctx context.Context, person *entities.Person) error

	FindAllCallCount    int32
	SaveCallCount       int32
	ExistsByIDCallCount int32
	DeleteByIDCallCount int32
}

func (m *MockPersonRepository) FindAll(ctx context.Context) ([]*entities.Person, error) {
	atomic.AddInt32(&m.FindAllCallCount, 1)
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPersonRepository) FindPage(ctx context.Context, page repositories.PageRequest) (*repositories.PersonPage, error) {
	if m.FindPageFunc != nil {
		return m.FindPageFunc(ctx, page)
	}
	return nil, errors.New("FindPageFunc not implemented in mock")
}

func (m *MockPersonRepository) FindByID(ctx context.Context, id uint) (*entities.Person, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPersonRepository) Save(ctx context.Context, person *entities.Person) (*entities.Person, error) {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, person)
	}
	return person, nil
}

func (m *MockPersonRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	atomic.AddInt32(&m.ExistsByIDCallCount, 1)
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, errors.New("ExistsByIDFunc not implemented in mock")
}

func (m *MockPersonRepository) DeleteByID(ctx context.Context, id uint) error {
	atomic.AddInt32(&m.DeleteByIDCallCount, 1)
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *MockPersonRepository) Delete(ctx context.Context, person *entities.Person) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, person)
	}
	return errors.New("DeleteFunc not implemented in mock")
}
