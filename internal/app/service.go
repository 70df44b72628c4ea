// Package app contains the trivia use cases. Services depend on port
// interfaces and return domain types and domain errors; adapters turn
// those into HTTP responses.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/trivia-service/internal/domain"
	"github.com/jsamuelsen/trivia-service/internal/platform/logging"
	"github.com/jsamuelsen/trivia-service/internal/platform/telemetry"
	"github.com/jsamuelsen/trivia-service/internal/ports"
)

// QuestionPage is one page of the question list plus catalogue data.
type QuestionPage struct {
	Questions       []domain.Question
	TotalQuestions  int
	CurrentCategory string
	Categories      domain.CategoryMap
}

// QuestionList is a filtered set of questions with the display category
// of the first one.
type QuestionList struct {
	Questions       []domain.Question
	TotalQuestions  int
	CurrentCategory string
}

// TriviaServiceConfig holds the service dependencies. Random, Recorder and
// Logger are optional.
type TriviaServiceConfig struct {
	Questions  ports.QuestionRepository
	Categories ports.CategoryRepository
	Random     ports.RandomSource
	Recorder   ports.ActivityRecorder
	Logger     *slog.Logger
}

// TriviaService implements the game use cases, one method per endpoint.
type TriviaService struct {
	questions  ports.QuestionRepository
	categories ports.CategoryRepository
	random     ports.RandomSource
	recorder   ports.ActivityRecorder
	logger     *slog.Logger
	tracer     trace.Tracer
}

// NewTriviaService panics if a repository is missing.
func NewTriviaService(cfg TriviaServiceConfig) *TriviaService {
	if cfg.Questions == nil || cfg.Categories == nil {
		panic("app: NewTriviaService requires question and category repositories")
	}

	random := cfg.Random
	if random == nil {
		random = DefaultRandom()
	}

	recorder := cfg.Recorder
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TriviaService{
		questions:  cfg.Questions,
		categories: cfg.Categories,
		random:     random,
		recorder:   recorder,
		logger:     logger.With(slog.String("component", "app.TriviaService")),
		tracer:     telemetry.Tracer(),
	}
}

// DefaultRandom returns a RandomSource backed by math/rand/v2.
func DefaultRandom() ports.RandomSource {
	return randomFunc(rand.IntN)
}

type randomFunc func(int) int

func (f randomFunc) IntN(n int) int { return f(n) }

func (s *TriviaService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// ListCategories returns every category as id -> lower-cased label.
func (s *TriviaService) ListCategories(ctx context.Context) (domain.CategoryMap, error) {
	ctx, span := s.tracer.Start(ctx, "TriviaService.ListCategories")
	defer span.End()

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("categories", "")
	}

	return domain.FormatCategories(categories), nil
}

// ListQuestions returns the given 1-based page of all questions.
// Questions and categories load concurrently. An empty page is NotFound.
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	ctx, span := s.tracer.Start(ctx, "TriviaService.ListQuestions",
		trace.WithAttributes(attribute.Int("trivia.page", page)))
	defer span.End()

	questions, categories, err := Parallel2(ctx, s.questions.List, s.categories.List)
	if err != nil {
		return nil, fmt.Errorf("loading questions: %w", err)
	}

	current := domain.Paginate(questions, page)
	if len(current) == 0 {
		return nil, domain.NewNotFoundError("questions page", strconv.Itoa(page))
	}

	formatted := domain.FormatCategories(categories)

	label, err := formatted.Label(current[0].Category)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:       current,
		TotalQuestions:  len(questions),
		CurrentCategory: label,
		Categories:      formatted,
	}, nil
}

// DeleteQuestion removes a question. A missing question is NotFound; any
// other failure is Unprocessable.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) error {
	ctx, span := s.tracer.Start(ctx, "TriviaService.DeleteQuestion",
		trace.WithAttributes(attribute.Int("trivia.question_id", id)))
	defer span.End()

	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return deleteFailure(err)
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return deleteFailure(err)
	}

	s.recorder.QuestionDeleted()
	s.log(ctx).InfoContext(ctx, "question deleted", slog.Int("question_id", id))

	return nil
}

func deleteFailure(err error) error {
	if domain.IsNotFound(err) {
		return err
	}

	return domain.WrapUnprocessable("delete question", err)
}

// SearchQuestions finds questions whose text contains term, ignoring case.
// An empty term matches every question.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string) (*QuestionList, error) {
	ctx, span := s.tracer.Start(ctx, "TriviaService.SearchQuestions")
	defer span.End()

	matches, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("searching questions: %w", err)
	}

	s.recorder.SearchPerformed(len(matches) > 0)

	if len(matches) == 0 {
		return nil, domain.NewNotFoundError("questions matching search", term)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	label, err := domain.FormatCategories(categories).Label(matches[0].Category)
	if err != nil {
		return nil, err
	}

	return &QuestionList{
		Questions:       matches,
		TotalQuestions:  len(matches),
		CurrentCategory: label,
	}, nil
}

// CreateQuestion validates and stores a new question and returns its id.
// Validation and storage failures are both Unprocessable.
func (s *TriviaService) CreateQuestion(ctx context.Context, candidate domain.NewQuestion) (int, error) {
	ctx, span := s.tracer.Start(ctx, "TriviaService.CreateQuestion")
	defer span.End()

	if err := candidate.Validate(); err != nil {
		return 0, domain.NewUnprocessableError("create question", err.Error())
	}

	created, err := s.questions.Create(ctx, domain.Question{
		Text:       candidate.Text,
		Answer:     candidate.Answer,
		Category:   *candidate.Category,
		Difficulty: *candidate.Difficulty,
	})
	if err != nil {
		return 0, domain.WrapUnprocessable("create question", err)
	}

	s.recorder.QuestionCreated()
	s.log(ctx).InfoContext(ctx, "question created",
		slog.Int("question_id", created.ID),
		slog.Int("category", created.Category),
	)

	return created.ID, nil
}

// QuestionsByCategory lists the questions of one category. The display
// label is the category type as stored, not lower-cased.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int) (*QuestionList, error) {
	ctx, span := s.tracer.Start(ctx, "TriviaService.QuestionsByCategory",
		trace.WithAttributes(attribute.Int("trivia.category_id", categoryID)))
	defer span.End()

	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing questions by category: %w", err)
	}

	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("questions in category", strconv.Itoa(categoryID))
	}

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return &QuestionList{
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// NextQuizQuestion draws a random question the player has not seen.
// categoryID domain.AllCategories draws from every category. A nil
// question with a nil error means the deck is exhausted.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	ctx, span := s.tracer.Start(ctx, "TriviaService.NextQuizQuestion",
		trace.WithAttributes(
			attribute.Int("trivia.category_id", categoryID),
			attribute.Int("trivia.previous", len(previous)),
		))
	defer span.End()

	var (
		deck []domain.Question
		err  error
	)

	if categoryID == domain.AllCategories {
		deck, err = s.questions.List(ctx)
	} else {
		deck, err = s.questions.ListByCategory(ctx, categoryID)
	}

	if err != nil {
		return nil, fmt.Errorf("loading quiz deck: %w", err)
	}

	remaining := domain.ExcludeSeen(deck, previous)
	if len(remaining) == 0 {
		s.recorder.QuizDraw(true)
		s.log(ctx).DebugContext(ctx, "quiz deck exhausted", slog.Int("category_id", categoryID))

		return nil, nil
	}

	s.recorder.QuizDraw(false)
	picked := remaining[s.random.IntN(len(remaining))]

	return &picked, nil
}

// CountQuestions returns the number of stored questions.
func (s *TriviaService) CountQuestions(ctx context.Context) (int, error) {
	n, err := s.questions.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting questions: %w", err)
	}

	return n, nil
}
