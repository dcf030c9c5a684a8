package habit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type Repository interface {
	Create(ctx context.Context, h *Habit) error
	FindByID(ctx context.Context, id uuid.UUID) (*Habit, error)
	List(ctx context.Context, filter ListFilter) ([]Habit, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, h *Habit) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Habit, error) {
	var h Habit
	if err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Habit, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.ExcludeVices {
		query = query.Where("type <> ?", HabitTypeVice)
	}

	var habits []Habit
	if err := query.Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}
