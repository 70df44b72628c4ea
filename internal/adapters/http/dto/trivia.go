package dto

import (
	"github.com/jsamuelsen/trivia-service/internal/app"
	"github.com/jsamuelsen/trivia-service/internal/domain"
)

// QuestionResponse is the wire form of a question.
type QuestionResponse struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// FromQuestion converts a domain question.
func FromQuestion(q domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// FromQuestions converts a slice, never returning nil so it encodes as [].
func FromQuestions(questions []domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = FromQuestion(q)
	}

	return out
}

// SuccessResponse is the body of a bare success, e.g. after a delete.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CategoriesResponse is returned by GET /categories. JSON object keys are
// the category ids as strings.
type CategoriesResponse struct {
	Success    bool               `json:"success"`
	Categories domain.CategoryMap `json:"categories"`
}

// QuestionPageResponse is returned by GET /questions.
type QuestionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
	Categories      domain.CategoryMap `json:"categories"`
}

// NewQuestionPageResponse converts a page result.
func NewQuestionPageResponse(page *app.QuestionPage) QuestionPageResponse {
	return QuestionPageResponse{
		Success:         true,
		Questions:       FromQuestions(page.Questions),
		TotalQuestions:  page.TotalQuestions,
		CurrentCategory: page.CurrentCategory,
		Categories:      page.Categories,
	}
}

// SearchResponse is returned by a search through POST /questions.
type SearchResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
}

// NewSearchResponse converts a search result.
func NewSearchResponse(list *app.QuestionList) SearchResponse {
	return SearchResponse{
		Success:         true,
		Questions:       FromQuestions(list.Questions),
		TotalQuestions:  list.TotalQuestions,
		CurrentCategory: list.CurrentCategory,
	}
}

// CategoryQuestionsResponse is returned by GET /categories/{id}/questions.
// The count key is singular on this route.
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestion   int                `json:"total_question"`
	CurrentCategory string             `json:"current_category"`
}

// NewCategoryQuestionsResponse converts a per-category listing.
func NewCategoryQuestionsResponse(list *app.QuestionList) CategoryQuestionsResponse {
	return CategoryQuestionsResponse{
		Success:         true,
		Questions:       FromQuestions(list.Questions),
		TotalQuestion:   list.TotalQuestions,
		CurrentCategory: list.CurrentCategory,
	}
}

// CreatedResponse is returned after a question is stored.
type CreatedResponse struct {
	Success    bool `json:"success"`
	QuestionID int  `json:"question_id"`
}

// QuizResponse carries the next quiz question, or null once the deck is
// exhausted.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// NewQuizResponse converts a draw; nil encodes as "question": null.
func NewQuizResponse(q *domain.Question) QuizResponse {
	resp := QuizResponse{Success: true}
	if q != nil {
		converted := FromQuestion(*q)
		resp.Question = &converted
	}

	return resp
}
