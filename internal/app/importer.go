package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/jsamuelsen/trivia-service/internal/domain"
	"github.com/jsamuelsen/trivia-service/internal/ports"
)

// ImportReport summarises one import run.
type ImportReport struct {
	Fetched  int
	Imported int
	Skipped  int
}

// ImporterConfig holds the importer dependencies.
type ImporterConfig struct {
	Source     ports.QuestionSource
	Categories ports.CategoryRepository
	Trivia     *TriviaService
	Workers    int
	Recorder   ports.ActivityRecorder
	Logger     *slog.Logger
}

// Importer copies questions from an upstream provider into local storage
// through the same create path the API uses.
type Importer struct {
	source     ports.QuestionSource
	categories ports.CategoryRepository
	trivia     *TriviaService
	workers    int
	recorder   ports.ActivityRecorder
	logger     *slog.Logger
}

// NewImporter creates an importer. Workers below 1 means one worker.
func NewImporter(cfg ImporterConfig) *Importer {
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = ports.NopRecorder{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Importer{
		source:     cfg.Source,
		categories: cfg.Categories,
		trivia:     cfg.Trivia,
		workers:    max(cfg.Workers, 1),
		recorder:   recorder,
		logger:     logger.With(slog.String("component", "app.Importer")),
	}
}

// Run fetches amount questions and stores those whose category name
// matches a local category. Questions that fail validation or whose
// category is unknown are skipped, not fatal.
func (im *Importer) Run(ctx context.Context, amount int) (ImportReport, error) {
	fetched, err := im.source.FetchQuestions(ctx, amount)
	if err != nil {
		return ImportReport{}, fmt.Errorf("fetching questions: %w", err)
	}

	categories, err := im.categories.List(ctx)
	if err != nil {
		return ImportReport{}, fmt.Errorf("listing categories: %w", err)
	}

	byName := make(map[string]int, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Type)] = c.ID
	}

	var imported, skipped atomic.Int64

	err = FanOut(ctx, im.workers, fetched, func(ctx context.Context, q ports.ExternalQuestion) error {
		categoryID, ok := byName[strings.ToLower(q.CategoryName)]
		if !ok {
			skipped.Add(1)
			im.logger.DebugContext(ctx, "skipping question with unknown category",
				slog.String("category", q.CategoryName))

			return nil
		}

		_, err := im.trivia.CreateQuestion(ctx, domain.NewQuestion{
			Text:       q.Text,
			Answer:     q.Answer,
			Category:   &categoryID,
			Difficulty: &q.Difficulty,
		})
		if err != nil {
			if domain.IsUnprocessable(err) && !domain.IsUnavailable(err) {
				skipped.Add(1)
				im.logger.WarnContext(ctx, "skipping unprocessable question", slog.Any("error", err))

				return nil
			}

			return err
		}

		imported.Add(1)

		return nil
	})

	report := ImportReport{
		Fetched:  len(fetched),
		Imported: int(imported.Load()),
		Skipped:  int(skipped.Load()),
	}
	im.recorder.ImportFinished(report.Imported, report.Skipped)

	if err != nil {
		return report, fmt.Errorf("importing questions: %w", err)
	}

	im.logger.InfoContext(ctx, "import finished",
		slog.Int("fetched", report.Fetched),
		slog.Int("imported", report.Imported),
		slog.Int("skipped", report.Skipped),
	)

	return report, nil
}
