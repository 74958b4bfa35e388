package handler

import (
	"github.com/bizscale/bizscale-api/internal/application/service"
	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/domain/enum"
	"github.com/bizscale/bizscale-api/internal/domain/taxonomy"
	"github.com/bizscale/bizscale-api/internal/presentation/http/dto/request"
	"github.com/bizscale/bizscale-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// OnboardingHandler handles the onboarding flow
type OnboardingHandler struct {
	stateService *service.StateService
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(stateService *service.StateService) *OnboardingHandler {
	return &OnboardingHandler{stateService: stateService}
}

// ListModels returns the business-model registry for the onboarding picker
func (h *OnboardingHandler) ListModels(c *gin.Context) {
	response.OK(c, "Business models retrieved successfully", taxonomy.All())
}

// Complete finishes onboarding with the chosen business configuration
func (h *OnboardingHandler) Complete(c *gin.Context) {
	var req request.CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state, err := h.stateService.CompleteOnboarding(c.Request.Context(), entity.BusinessConfig{
		Name:     req.Name,
		Type:     enum.BusinessType(req.Type),
		Currency: req.Currency,
		Modules:  req.Modules,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Business configured successfully", state)
}
