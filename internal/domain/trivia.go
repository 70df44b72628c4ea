// Package domain contains core business entities and rules.
package domain

import (
	"strconv"
	"strings"
)

// QuestionsPerPage is the fixed size of a question page.
const QuestionsPerPage = 10

// AllCategories selects questions from every category when used as a quiz category.
const AllCategories = 0

// Question is a trivia question with its answer.
type Question struct {
	// ID is assigned by storage on insert.
	ID int

	// Text is the question itself.
	Text string

	// Answer is the expected answer.
	Answer string

	// Category references a Category ID. Storage does not enforce it.
	Category int

	// Difficulty is a free integer rating.
	Difficulty int
}

// NewQuestion holds the fields needed to create a Question.
// Pointer fields distinguish "absent" from zero values.
type NewQuestion struct {
	Text       string
	Answer     string
	Category   *int
	Difficulty *int
}

// Validate reports the first missing or blank field.
func (n NewQuestion) Validate() error {
	switch {
	case strings.TrimSpace(n.Text) == "":
		return NewValidationError("question", "must not be empty")
	case strings.TrimSpace(n.Answer) == "":
		return NewValidationError("answer", "must not be empty")
	case n.Category == nil:
		return NewValidationError("category", "is required")
	case n.Difficulty == nil:
		return NewValidationError("difficulty", "is required")
	}

	return nil
}

// Category is a question category.
type Category struct {
	ID   int
	Type string
}

// CategoryMap maps category IDs to lower-cased type labels.
type CategoryMap map[int]string

// FormatCategories builds the lookup map used on the wire.
func FormatCategories(categories []Category) CategoryMap {
	formatted := make(CategoryMap, len(categories))
	for _, c := range categories {
		formatted[c.ID] = strings.ToLower(c.Type)
	}

	return formatted
}

// Label returns the label of categoryID.
// A question pointing at an unknown category yields a NotFoundError.
func (m CategoryMap) Label(categoryID int) (string, error) {
	label, ok := m[categoryID]
	if !ok {
		return "", NewNotFoundError("category", strconv.Itoa(categoryID))
	}

	return label, nil
}

// Paginate returns the 1-based page of items. Pages below 1 are treated as 1;
// pages past the end are empty.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}

	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page-1 >= pages {
		return []T{}
	}

	start := (page - 1) * QuestionsPerPage

	end := min(start+QuestionsPerPage, len(items))

	return items[start:end]
}

// ExcludeSeen drops questions whose ID appears in seen.
func ExcludeSeen(questions []Question, seen []int) []Question {
	if len(seen) == 0 {
		return questions
	}

	skip := make(map[int]struct{}, len(seen))
	for _, id := range seen {
		skip[id] = struct{}{}
	}

	remaining := make([]Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := skip[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}

	return remaining
}
