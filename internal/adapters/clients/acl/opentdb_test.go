package acl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/trivia-service/internal/adapters/clients"
	"github.com/jsamuelsen/trivia-service/internal/domain"
	"github.com/jsamuelsen/trivia-service/internal/platform/config"
	"github.com/jsamuelsen/trivia-service/internal/ports"
)

const sampleResponse = `{
  "response_code": 0,
  "results": [
    {
      "category": "Science: Computers",
      "type": "multiple",
      "difficulty": "medium",
      "question": "What does &quot;HTML&quot; stand for?",
      "correct_answer": "Hypertext Markup Language",
      "incorrect_answers": ["a", "b", "c"]
    },
    {
      "category": "Entertainment: Video Games",
      "type": "multiple",
      "difficulty": "hard",
      "question": "Which company created Sonic the Hedgehog?",
      "correct_answer": "Sega",
      "incorrect_answers": ["a", "b", "c"]
    },
    {
      "category": "History",
      "type": "multiple",
      "difficulty": "legendary",
      "question": "Rejected for difficulty",
      "correct_answer": "x",
      "incorrect_answers": []
    }
  ]
}`

func newSource(t *testing.T, handler http.HandlerFunc) *OpenTDBSource {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		BaseURL:     server.URL,
		ServiceName: "opentdb",
		Timeout:     time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      2,
		},
		Circuit: config.CircuitBreakerConfig{MaxFailures: 10, Timeout: time.Second, HalfOpenLimit: 1},
	})
	require.NoError(t, err)

	return NewOpenTDBSource(OpenTDBSourceConfig{Client: client})
}

func TestNewOpenTDBSource_RequiresClient(t *testing.T) {
	assert.Panics(t, func() { NewOpenTDBSource(OpenTDBSourceConfig{}) })
}

func TestOpenTDBSource_FetchQuestions(t *testing.T) {
	source := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api.php", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("amount"))
		assert.Equal(t, "multiple", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(sampleResponse))
	})

	got, err := source.FetchQuestions(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []ports.ExternalQuestion{
		{Text: `What does "HTML" stand for?`, Answer: "Hypertext Markup Language", CategoryName: "Science", Difficulty: 2},
		{Text: "Which company created Sonic the Hedgehog?", Answer: "Sega", CategoryName: "Entertainment", Difficulty: 3},
	}, got)
	assert.Equal(t, "opentdb", source.Name())
}

func TestOpenTDBSource_ClampsAmount(t *testing.T) {
	var amounts []string
	source := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		amounts = append(amounts, r.URL.Query().Get("amount"))
		_, _ = w.Write([]byte(`{"response_code":0,"results":[]}`))
	})

	_, err := source.FetchQuestions(context.Background(), 500)
	require.NoError(t, err)
	_, err = source.FetchQuestions(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"50", "1"}, amounts)
}

func TestOpenTDBSource_ResponseCodes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(error) bool
	}{
		{name: "no results", body: `{"response_code":1,"results":[]}`, check: domain.IsNotFound},
		{name: "invalid parameter", body: `{"response_code":2}`, check: domain.IsUnavailable},
		{name: "rate limited", body: `{"response_code":5}`, check: domain.IsUnavailable},
		{name: "unknown code", body: `{"response_code":99}`, check: domain.IsUnavailable},
		{name: "malformed", body: `not json`, check: domain.IsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := newSource(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := source.FetchQuestions(context.Background(), 10)

			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestOpenTDBSource_Check(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		source := newSource(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api_category.php", r.URL.Path)
			_, _ = w.Write([]byte(`{"trivia_categories":[{"id":9,"name":"General Knowledge"}]}`))
		})

		assert.NoError(t, source.Check(context.Background()))
	})

	t.Run("upstream down", func(t *testing.T) {
		source := newSource(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		err := source.Check(context.Background())

		assert.True(t, domain.IsUnavailable(err))
	})
}
