package persistence

import "github.com/jsamuelsen/trivia-service/internal/domain"

// questionRecord maps the questions table. category is a plain integer
// column with no foreign key.
type questionRecord struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Question   string `gorm:"type:text;not null"`
	Answer     string `gorm:"type:text;not null"`
	Category   int    `gorm:"not null;index"`
	Difficulty int    `gorm:"not null"`
}

func (questionRecord) TableName() string { return "questions" }

func (r questionRecord) toDomain() domain.Question {
	return domain.Question{
		ID:         r.ID,
		Text:       r.Question,
		Answer:     r.Answer,
		Category:   r.Category,
		Difficulty: r.Difficulty,
	}
}

func newQuestionRecord(q domain.Question) questionRecord {
	return questionRecord{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

type categoryRecord struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Type string `gorm:"size:255;not null"`
}

func (categoryRecord) TableName() string { return "categories" }

func (r categoryRecord) toDomain() domain.Category {
	return domain.Category{ID: r.ID, Type: r.Type}
}

func questionsToDomain(records []questionRecord) []domain.Question {
	questions := make([]domain.Question, len(records))
	for i, r := range records {
		questions[i] = r.toDomain()
	}

	return questions
}
