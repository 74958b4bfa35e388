package handler

import (
	"github.com/bizscale/bizscale-api/internal/application/service"
	"github.com/bizscale/bizscale-api/internal/domain/enum"
	"github.com/bizscale/bizscale-api/internal/presentation/http/dto/request"
	"github.com/bizscale/bizscale-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles transaction-ledger HTTP requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// List returns the ledger in display order together with the aggregates
func (h *LedgerHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, "Transactions retrieved successfully", gin.H{
		"transactions": h.ledgerService.List(ctx),
		"totals":       h.ledgerService.Aggregates(ctx),
	})
}

// Create appends a new ledger entry
func (h *LedgerHandler) Create(c *gin.Context) {
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tx, err := h.ledgerService.Append(c.Request.Context(), service.AppendEntryInput{
		Type:        enum.TransactionType(req.Type),
		Date:        req.Date,
		Category:    req.Category,
		Amount:      *req.Amount,
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction recorded successfully", tx)
}
