package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/trivia-service/internal/adapters/http/dto"
)

// noRoute answers unknown paths with the 404 envelope.
func noRoute(c *gin.Context) {
	dto.AbortWithStatus(c, http.StatusNotFound)
}

// noMethod answers known paths hit with an unsupported method, such as
// PATCH /questions, with the 405 envelope.
func noMethod(c *gin.Context) {
	dto.AbortWithStatus(c, http.StatusMethodNotAllowed)
}
