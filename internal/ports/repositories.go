// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Every method takes a context first and returns domain types. Errors are
// domain errors: domain.ErrNotFound for missing rows, domain.ErrUnavailable
// when the store cannot be reached.
package ports

import (
	"context"

	"github.com/jsamuelsen/trivia-service/internal/domain"
)

// QuestionRepository persists trivia questions.
type QuestionRepository interface {
	// List returns every question ordered by id.
	List(ctx context.Context) ([]domain.Question, error)

	// Count returns the number of stored questions.
	Count(ctx context.Context) (int, error)

	// GetByID returns domain.ErrNotFound if no question has the id.
	GetByID(ctx context.Context, id int) (*domain.Question, error)

	// Search returns questions whose text contains term, ignoring case,
	// ordered by id. Wildcard characters in term match literally.
	Search(ctx context.Context, term string) ([]domain.Question, error)

	// ListByCategory returns the questions of one category ordered by id.
	ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error)

	// Create stores q and returns it with its assigned id.
	Create(ctx context.Context, q domain.Question) (domain.Question, error)

	// Delete removes the question. Returns domain.ErrNotFound if it is absent.
	Delete(ctx context.Context, id int) error
}

// CategoryRepository reads the category catalogue. Categories are seeded,
// never written through the API.
type CategoryRepository interface {
	// List returns every category ordered by id.
	List(ctx context.Context) ([]domain.Category, error)

	// GetByID returns domain.ErrNotFound if no category has the id.
	GetByID(ctx context.Context, id int) (*domain.Category, error)
}

// RandomSource picks quiz questions. Tests inject a deterministic one.
type RandomSource interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// ExternalQuestion is a question fetched from an upstream trivia provider,
// already translated out of the provider's wire format.
type ExternalQuestion struct {
	Text         string
	Answer       string
	CategoryName string
	Difficulty   int
}

// QuestionSource fetches questions from an upstream trivia provider.
type QuestionSource interface {
	// FetchQuestions returns up to amount questions.
	// Returns domain.ErrUnavailable if the provider cannot be reached.
	FetchQuestions(ctx context.Context, amount int) ([]ExternalQuestion, error)
}

// ActivityRecorder receives game activity events for metrics.
type ActivityRecorder interface {
	QuestionCreated()
	QuestionDeleted()
	SearchPerformed(found bool)
	QuizDraw(exhausted bool)
	ImportFinished(imported, skipped int)
}

// NopRecorder discards activity events.
type NopRecorder struct{}

func (NopRecorder) QuestionCreated() {}
func (NopRecorder) QuestionDeleted() {}
func (NopRecorder) SearchPerformed(bool) {}
func (NopRecorder) QuizDraw(bool) {}
func (NopRecorder) ImportFinished(int, int) {}
