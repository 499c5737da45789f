package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"person-api/internal/domain/entities"
)

// PersonRepository is the gorm-backed implementation of PersonRepositoryContract.
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a PersonRepository on top of an opened gorm handle.
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) FindAll(ctx context.Context) ([]*entities.Person, error) {
	people := make([]*entities.Person, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	return people, nil
}

func (r *PersonRepository) FindPage(ctx context.Context, page PageRequest) (*PersonPage, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Person{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting people: %w", err)
	}

	people := make([]*entities.Person, 0, page.Size)
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&people).Error
	if err != nil {
		return nil, fmt.Errorf("listing people page %d: %w", page.Page, err)
	}

	return &PersonPage{
		Content:       people,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
	}, nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id uint) (*entities.Person, error) {
	var person entities.Person
	err := r.db.WithContext(ctx).First(&person, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading person %d: %w", id, err)
	}
	return &person, nil
}

// Save inserts the person when ID is zero and overwrites every column otherwise.
func (r *PersonRepository) Save(ctx context.Context, person *entities.Person) (*entities.Person, error) {
	if err := r.db.WithContext(ctx).Save(person).Error; err != nil {
		return nil, fmt.Errorf("saving person: %w", err)
	}
	return person, nil
}

func (r *PersonRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Person{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking person %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *PersonRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entities.Person{}, id).Error; err != nil {
		return fmt.Errorf("deleting person %d: %w", id, err)
	}
	return nil
}

func (r *PersonRepository) Delete(ctx context.Context, person *entities.Person) error {
	if person == nil || person.ID == 0 {
		return errors.New("deleting person: missing id")
	}
	return r.DeleteByID(ctx, person.ID)
}
