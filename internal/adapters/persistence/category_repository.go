package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen/trivia-service/internal/domain"
	"github.com/jsamuelsen/trivia-service/internal/ports"
)

// CategoryRepository implements ports.CategoryRepository.
type CategoryRepository struct {
	db *gorm.DB
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository creates a repository on the shared pool.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, translate("list categories", "category", 0, err)
	}

	categories := make([]domain.Category, len(records))
	for i, rec := range records {
		categories[i] = rec.toDomain()
	}

	return categories, nil
}

// GetByID returns one category, or NotFound when the id is unknown.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	var record categoryRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, translate("get category", "category", id, err)
	}

	c := record.toDomain()

	return &c, nil
}
