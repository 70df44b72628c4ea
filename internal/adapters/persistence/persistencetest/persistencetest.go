// Package persistencetest provides an in-memory sqlite store for tests.
package persistencetest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jsamuelsen/trivia-service/internal/adapters/persistence"
	"github.com/jsamuelsen/trivia-service/internal/domain"
	"github.com/jsamuelsen/trivia-service/internal/platform/config"
)

// NewDB opens a private in-memory database with the schema migrated and
// the default categories seeded. The pool holds a single connection so
// every query sees the same memory database.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	cfg := &config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		AutoMigrate:  true,
		Seed:         true,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := persistence.Open(cfg, logger)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = persistence.Close(db) })

	require.NoError(tb, persistence.Setup(context.Background(), db, cfg, logger))

	return db
}

// SeedQuestions inserts questions in order and returns them with their ids.
func SeedQuestions(tb testing.TB, db *gorm.DB, questions ...domain.Question) []domain.Question {
	tb.Helper()

	repo := persistence.NewQuestionRepository(db)
	stored := make([]domain.Question, 0, len(questions))

	for _, q := range questions {
		created, err := repo.Create(context.Background(), q)
		require.NoError(tb, err)
		stored = append(stored, created)
	}

	return stored
}

// SampleQuestions returns a small deck spread over the seeded categories.
func SampleQuestions() []domain.Question {
	return []domain.Question{
		{Text: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Text: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{Text: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{Text: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{Text: "Which program landed the first humans on the Moon? (Apollo Program)", Answer: "Apollo", Category: 4, Difficulty: 2},
		{Text: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{Text: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		{Text: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
	}
}
