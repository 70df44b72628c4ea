package persistence

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/jsamuelsen/trivia-service/internal/domain"
	"github.com/jsamuelsen/trivia-service/internal/ports"
)

// likeEscaper escapes LIKE wildcards so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepository implements ports.QuestionRepository.
type QuestionRepository struct {
	db *gorm.DB
}

var _ ports.QuestionRepository = (*QuestionRepository)(nil)

// NewQuestionRepository creates a repository on the shared pool.
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	var records []questionRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, translate("list questions", "question", 0, err)
	}

	return questionsToDomain(records), nil
}

// Count returns the number of stored questions.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&questionRecord{}).Count(&count).Error; err != nil {
		return 0, translate("count questions", "question", 0, err)
	}

	return int(count), nil
}

// GetByID returns the question or a NotFoundError.
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	var record questionRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, translate("get question", "question", id, err)
	}

	q := record.toDomain()

	return &q, nil
}

// Search matches term against the question text, ignoring case.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	lower := strings.ToLower(term)
	pattern := "%" + likeEscaper.Replace(lower) + "%"

	postgres := r.db.Dialector.Name() == "postgres"
	foldInSQL := postgres || isASCII(term)
	query := r.db.WithContext(ctx).Order("id")

	switch {
	case postgres:
		query = query.Where(`question ILIKE ? ESCAPE '\'`, pattern)
	case isASCII(term):
		query = query.Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern)
	}

	var records []questionRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, translate("search questions", "question", 0, err)
	}

	// SQLite's LOWER only folds ASCII, so non-ASCII terms are matched here.
	if !foldInSQL {
		records = slices.DeleteFunc(records, func(rec questionRecord) bool {
			return !strings.Contains(strings.ToLower(rec.Question), lower)
		})
	}

	return questionsToDomain(records), nil
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

// ListByCategory returns the questions of one category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	var records []questionRecord
	err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, translate("list questions by category", "question", 0, err)
	}

	return questionsToDomain(records), nil
}

// Create inserts q and returns it with the generated id.
func (r *QuestionRepository) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	record := newQuestionRecord(q)
	record.ID = 0

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Question{}, translate("create question", "question", 0, err)
	}

	return record.toDomain(), nil
}

// Delete removes the question. A missing row yields a NotFoundError.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&questionRecord{}, id)
	if result.Error != nil {
		return translate("delete question", "question", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return translate("delete question", "question", id, gorm.ErrRecordNotFound)
	}

	return nil
}
