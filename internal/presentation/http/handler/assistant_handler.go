package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truythudien/truythu-api/internal/application/service"
	"github.com/truythudien/truythu-api/internal/presentation/http/dto/request"
	"github.com/truythudien/truythu-api/internal/presentation/http/dto/response"
)

// AssistantHandler handles AI legal-assistant HTTP requests
type AssistantHandler struct {
	assistantService *service.AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Search answers a legal query, falling back to canned answers when the
// upstream model is unavailable
func (h *AssistantHandler) Search(c *gin.Context) {
	var req request.AssistantSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	answer := h.assistantService.Search(c.Request.Context(), req.Query, req.Model)
	c.JSON(http.StatusOK, answer)
}
