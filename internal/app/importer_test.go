package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/trivia-service/internal/domain"
	"github.com/jsamuelsen/trivia-service/internal/mocks"
	"github.com/jsamuelsen/trivia-service/internal/ports"
)

func newImporterFixture(t *testing.T, workers int) (*fixture, *mocks.MockQuestionSource, *Importer) {
	t.Helper()

	f := newFixture(t)
	source := mocks.NewMockQuestionSource(t)
	importer := NewImporter(ImporterConfig{
		Source:     source,
		Categories: f.categories,
		Trivia:     f.svc,
		Workers:    workers,
		Recorder:   f.recorder,
		Logger:     discardLogger(),
	})

	return f, source, importer
}

func TestImporter_Run(t *testing.T) {
	fetched := []ports.ExternalQuestion{
		{Text: "What is H2O?", Answer: "Water", CategoryName: "Science", Difficulty: 1},
		{Text: "Who painted the Mona Lisa?", Answer: "Da Vinci", CategoryName: "art", Difficulty: 2},
		{Text: "Which console came first?", Answer: "Atari", CategoryName: "Video Games", Difficulty: 3},
		{Text: "  ", Answer: "blank", CategoryName: "Geography", Difficulty: 1},
	}

	for _, workers := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			f, source, importer := newImporterFixture(t, workers)
			source.EXPECT().FetchQuestions(mock.Anything, 4).Return(fetched, nil)
			f.categories.EXPECT().List(mock.Anything).Return(testCategories, nil)
			f.questions.EXPECT().
				Create(mock.Anything, mock.MatchedBy(func(q domain.Question) bool { return q.Category == 1 })).
				Return(domain.Question{ID: 30, Category: 1}, nil).Once()
			f.questions.EXPECT().
				Create(mock.Anything, mock.MatchedBy(func(q domain.Question) bool { return q.Category == 2 })).
				Return(domain.Question{ID: 31, Category: 2}, nil).Once()

			report, err := importer.Run(context.Background(), 4)

			require.NoError(t, err)
			assert.Equal(t, ImportReport{Fetched: 4, Imported: 2, Skipped: 2}, report)
			assert.Equal(t, 2, f.recorder.created)
			assert.Equal(t, 2, f.recorder.imported)
			assert.Equal(t, 2, f.recorder.skipped)
		})
	}
}

func TestImporter_Run_SourceFailure(t *testing.T) {
	_, source, importer := newImporterFixture(t, 2)
	source.EXPECT().FetchQuestions(mock.Anything, 10).Return(nil, domain.NewUnavailableError("opentdb", "circuit open"))

	_, err := importer.Run(context.Background(), 10)

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestImporter_Run_StorageUnavailableAborts(t *testing.T) {
	f, source, importer := newImporterFixture(t, 1)
	source.EXPECT().FetchQuestions(mock.Anything, 1).Return([]ports.ExternalQuestion{
		{Text: "q", Answer: "a", CategoryName: "Science", Difficulty: 1},
	}, nil)
	f.categories.EXPECT().List(mock.Anything).Return(testCategories, nil)
	f.questions.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domain.Question{}, domain.NewUnavailableError("database", "connection refused"))

	report, err := importer.Run(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Zero(t, report.Imported)
}

func TestImporter_Run_CategoryListFailure(t *testing.T) {
	f, source, importer := newImporterFixture(t, 1)
	source.EXPECT().FetchQuestions(mock.Anything, 1).Return([]ports.ExternalQuestion{}, nil)
	f.categories.EXPECT().List(mock.Anything).Return(nil, errors.New("boom"))

	_, err := importer.Run(context.Background(), 1)

	assert.ErrorContains(t, err, "listing categories")
}
