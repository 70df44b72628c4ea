package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/jsamuelsen/trivia-service/internal/domain"
)

// QuestionCommand is what a POST /questions body asks for: a
// SearchCommand or a CreateCommand.
type QuestionCommand interface {
	isQuestionCommand()
}

// SearchCommand searches question text. An empty term matches everything.
type SearchCommand struct {
	Term string
}

// CreateCommand stores a new question. Category and difficulty accept
// numeric strings, as sent by HTML select elements; null counts as absent.
type CreateCommand struct {
	Question   string       `json:"question"   validate:"notblank"`
	Answer     string       `json:"answer"     validate:"notblank"`
	Category   *FlexibleInt `json:"category"   validate:"required"`
	Difficulty *FlexibleInt `json:"difficulty" validate:"required"`
}

func (SearchCommand) isQuestionCommand() {}
func (CreateCommand) isQuestionCommand() {}

// NewQuestion converts a validated command.
func (c CreateCommand) NewQuestion() domain.NewQuestion {
	return domain.NewQuestion{
		Text:       c.Question,
		Answer:     c.Answer,
		Category:   c.Category.IntPtr(),
		Difficulty: c.Difficulty.IntPtr(),
	}
}

const createOperation = "create question"

// DecodeQuestionCommand reads a POST /questions body. A non-null
// "searchTerm" selects a search; anything else is a create. Malformed JSON
// is a validation error (400). A create body with wrong field types or
// blank fields is unprocessable (422).
func DecodeQuestionCommand(body []byte) (QuestionCommand, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	if term, ok := raw["searchTerm"]; ok && !isNull(term) {
		var s string
		if err := json.Unmarshal(term, &s); err != nil {
			return nil, domain.NewValidationError("searchTerm", "must be a string")
		}

		return SearchCommand{Term: s}, nil
	}

	var cmd CreateCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, domain.WrapUnprocessable(createOperation, &FieldErrors{
				Fields: map[string]string{typeErr.Field: "has the wrong type"},
			})
		}

		return nil, domain.NewValidationError("body", err.Error())
	}

	if err := Validate(cmd); err != nil {
		return nil, domain.WrapUnprocessable(createOperation, err)
	}

	return cmd, nil
}

// QuizRequest is the POST /quizzes body.
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []int         `json:"previous_questions"`
}

// QuizCategory selects the quiz deck. ID 0 means every category.
type QuizCategory struct {
	ID   FlexibleInt `json:"id"`
	Type string      `json:"type,omitempty"`
}

// DecodeQuizRequest reads a POST /quizzes body. A missing quiz_category
// is NotFound.
func DecodeQuizRequest(body []byte) (*QuizRequest, error) {
	if _, err := decodeObject(body); err != nil {
		return nil, err
	}

	var req QuizRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, domain.NewValidationError("body", err.Error())
	}

	if req.QuizCategory == nil {
		return nil, domain.NewNotFoundError("quiz_category", "")
	}

	return &req, nil
}

// FlexibleInt accepts a JSON number or a numeric string. Browser clients
// send category ids taken from object keys, which are strings.
type FlexibleInt int

// UnmarshalJSON implements json.Unmarshaler. Anything that is not an
// integer yields a *json.UnmarshalTypeError, which the decoder tags with
// the offending field name.
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*f = 0
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleInt(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return notAnInteger(data)
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return notAnInteger(data)
	}

	*f = FlexibleInt(n)

	return nil
}

// IntPtr converts a decoded optional field. Nil stays nil.
func (f *FlexibleInt) IntPtr() *int {
	if f == nil {
		return nil
	}

	n := int(*f)

	return &n
}

func notAnInteger(data []byte) error {
	return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeFor[int]()}
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, domain.NewValidationError("body", "must be a JSON object")
	}

	return raw, nil
}

func isNull(data json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
