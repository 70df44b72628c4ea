//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func postJSON(client *http.Client, url string, payload any) (int, map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decoding response: %w", err)
	}

	return resp.StatusCode, decoded, nil
}

// TestConcurrent_CreateQuestions verifies parallel inserts get distinct ids
// and all land in storage.
func TestConcurrent_CreateQuestions(t *testing.T) {
	s := newStack(t)
	client := s.server.Client()

	const writers = 40

	var (
		mu  sync.Mutex
		ids = make(map[int]struct{}, writers)
	)

	var g errgroup.Group
	for i := range writers {
		g.Go(func() error {
			status, body, err := postJSON(client, s.server.URL+"/questions", map[string]any{
				"question":   fmt.Sprintf("Concurrent question %d?", i),
				"answer":     strconv.Itoa(i),
				"category":   1 + i%6,
				"difficulty": 1 + i%5,
			})
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return fmt.Errorf("writer %d: status %d: %v", i, status, body)
			}

			mu.Lock()
			ids[int(body["question_id"].(float64))] = struct{}{}
			mu.Unlock()

			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Len(t, ids, writers, "every insert should get its own id")

	total, err := s.svc.CountQuestions(t.Context())
	require.NoError(t, err)
	assert.Equal(t, len(sampleDeck())+writers, total)
}

// TestConcurrent_QuizPlayers runs independent quiz sessions in parallel.
// No player may see a question twice, and every player exhausts the deck.
func TestConcurrent_QuizPlayers(t *testing.T) {
	s := newStack(t)
	client := s.server.Client()

	const players = 8

	var g errgroup.Group
	for p := range players {
		g.Go(func() error {
			var previous []int

			for range len(sampleDeck()) + 1 {
				status, body, err := postJSON(client, s.server.URL+"/quizzes", map[string]any{
					"previous_questions": previous,
					"quiz_category":      map[string]any{"id": 0, "type": "click"},
				})
				if err != nil {
					return err
				}
				if status != http.StatusOK {
					return fmt.Errorf("player %d: status %d", p, status)
				}

				question, ok := body["question"].(map[string]any)
				if !ok {
					break
				}

				id := int(question["id"].(float64))
				for _, seen := range previous {
					if seen == id {
						return fmt.Errorf("player %d: question %d repeated", p, id)
					}
				}
				previous = append(previous, id)
			}

			if len(previous) != len(sampleDeck()) {
				return fmt.Errorf("player %d: saw %d questions, want %d", p, len(previous), len(sampleDeck()))
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
}

// TestConcurrent_DeleteSameQuestion verifies that exactly one of many
// racing deletes succeeds and the rest report the question missing.
func TestConcurrent_DeleteSameQuestion(t *testing.T) {
	s := newStack(t)
	client := s.server.Client()

	const racers = 10
	target := s.server.URL + "/questions/1"

	var ok, notFound, other atomic.Int32
	var wg sync.WaitGroup

	for range racers {
		wg.Go(func() {
			req, err := http.NewRequestWithContext(t.Context(), http.MethodDelete, target, http.NoBody)
			if err != nil {
				other.Add(1)
				return
			}

			resp, err := client.Do(req)
			if err != nil {
				other.Add(1)
				return
			}
			resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusOK:
				ok.Add(1)
			case http.StatusNotFound:
				notFound.Add(1)
			default:
				other.Add(1)
			}
		})
	}

	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(racers-1), notFound.Load())
	assert.Zero(t, other.Load())
}
