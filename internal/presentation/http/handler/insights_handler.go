package handler

import (
	"log"

	"github.com/bizscale/bizscale-api/internal/application/service"
	"github.com/bizscale/bizscale-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// InsightsHandler handles AI-insight HTTP requests
type InsightsHandler struct {
	insightsService *service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService *service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// Get requests insights for the current aggregate state. The external call is
// a soft-fail collaborator: any failure is logged and rendered as the
// "no insights yet" placeholder, never as an error response.
func (h *InsightsHandler) Get(c *gin.Context) {
	insight, err := h.insightsService.Fetch(c.Request.Context())
	if err != nil {
		log.Printf("Warning: insights unavailable: %v", err)
		response.OK(c, "No insights available yet", gin.H{
			"available": false,
			"insight":   nil,
		})
		return
	}

	response.OK(c, "Insights generated successfully", gin.H{
		"available": true,
		"insight":   insight,
	})
}
