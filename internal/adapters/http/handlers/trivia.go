package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/trivia-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/trivia-service/internal/app"
	"github.com/jsamuelsen/trivia-service/internal/domain"
)

// TriviaHandler serves the game endpoints.
type TriviaHandler struct {
	service *app.TriviaService
}

// NewTriviaHandler creates a TriviaHandler.
func NewTriviaHandler(service *app.TriviaService) *TriviaHandler {
	return &TriviaHandler{service: service}
}

// RegisterRoutes mounts the game endpoints on rg.
//
//	GET    /categories
//	GET    /categories/:category_id/questions
//	GET    /questions?page=N
//	POST   /questions
//	DELETE /questions/:question_id
//	POST   /quizzes
func (h *TriviaHandler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/categories", h.ListCategories)
	rg.GET("/categories/:category_id/questions", h.QuestionsByCategory)
	rg.GET("/questions", h.ListQuestions)
	rg.POST("/questions", h.PostQuestion)
	rg.DELETE("/questions/:question_id", h.DeleteQuestion)
	rg.POST("/quizzes", h.NextQuizQuestion)
}

// ListCategories handles GET /categories.
func (h *TriviaHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{Success: true, Categories: categories})
}

// ListQuestions handles GET /questions?page=N.
func (h *TriviaHandler) ListQuestions(c *gin.Context) {
	page, err := h.service.ListQuestions(c.Request.Context(), dto.PageFromQuery(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionPageResponse(page))
}

// DeleteQuestion handles DELETE /questions/:question_id. A non-integer id
// matches no question.
func (h *TriviaHandler) DeleteQuestion(c *gin.Context) {
	id, ok := intParam(c, "question_id")
	if !ok {
		return
	}

	if err := h.service.DeleteQuestion(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// PostQuestion handles POST /questions, which either searches or creates
// depending on the body.
func (h *TriviaHandler) PostQuestion(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		dto.HandleError(c, domain.NewValidationError("body", err.Error()))
		return
	}

	cmd, err := dto.DecodeQuestionCommand(body)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	ctx := c.Request.Context()

	switch cmd := cmd.(type) {
	case dto.SearchCommand:
		list, err := h.service.SearchQuestions(ctx, cmd.Term)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.NewSearchResponse(list))
	case dto.CreateCommand:
		id, err := h.service.CreateQuestion(ctx, cmd.NewQuestion())
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.CreatedResponse{Success: true, QuestionID: id})
	}
}

// QuestionsByCategory handles GET /categories/:category_id/questions.
func (h *TriviaHandler) QuestionsByCategory(c *gin.Context) {
	id, ok := intParam(c, "category_id")
	if !ok {
		return
	}

	list, err := h.service.QuestionsByCategory(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryQuestionsResponse(list))
}

// NextQuizQuestion handles POST /quizzes.
func (h *TriviaHandler) NextQuizQuestion(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		dto.HandleError(c, domain.NewValidationError("body", err.Error()))
		return
	}

	req, err := dto.DecodeQuizRequest(body)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	question, err := h.service.NextQuizQuestion(c.Request.Context(), int(req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(question))
}

// intParam parses a path parameter, answering 404 when it is not an integer.
func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		dto.HandleError(c, domain.NewNotFoundError(name, c.Param(name)))
		return 0, false
	}

	return id, true
}
