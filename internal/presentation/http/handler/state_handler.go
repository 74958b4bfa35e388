package handler

import (
	"github.com/bizscale/bizscale-api/internal/application/service"
	"github.com/bizscale/bizscale-api/internal/presentation/http/dto/request"
	"github.com/bizscale/bizscale-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// StateHandler handles application-state lifecycle requests
type StateHandler struct {
	stateService *service.StateService
}

// NewStateHandler creates a new state handler
func NewStateHandler(stateService *service.StateService) *StateHandler {
	return &StateHandler{stateService: stateService}
}

// Get returns the current application state and lifecycle phase
func (h *StateHandler) Get(c *gin.Context) {
	response.OK(c, "State retrieved successfully", gin.H{
		"phase": h.stateService.Phase(),
		"state": h.stateService.Snapshot(),
	})
}

// Reset clears the business configuration, returning to the unconfigured
// phase. Ledger, inventory and employees are kept.
func (h *StateHandler) Reset(c *gin.Context) {
	state, err := h.stateService.ResetConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Business configuration reset", state)
}

// Logout clears the backing store and resets to a fresh state
func (h *StateHandler) Logout(c *gin.Context) {
	if err := h.stateService.Logout(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Logged out", nil)
}

// SelectView records the active dashboard view
func (h *StateHandler) SelectView(c *gin.Context) {
	var req request.SelectViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state, err := h.stateService.SelectView(c.Request.Context(), req.View)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "View selected", gin.H{"active_view": state.ActiveView})
}
