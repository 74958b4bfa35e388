package service

import (
	"context"
	"log"
	"time"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/domain/enum"
	"github.com/bizscale/bizscale-api/internal/domain/repository"
	"github.com/bizscale/bizscale-api/internal/infrastructure/events"
	"github.com/bizscale/bizscale-api/pkg/apperror"
	"github.com/bizscale/bizscale-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// LedgerService validates and appends ledger entries and serves the derived
// aggregates.
type LedgerService struct {
	state     *StateService
	publisher repository.EventPublisher
	now       func() time.Time
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(state *StateService, publisher repository.EventPublisher) *LedgerService {
	return &LedgerService{
		state:     state,
		publisher: publisher,
		now:       time.Now,
	}
}

// AppendEntryInput is the ledger-entry form payload.
type AppendEntryInput struct {
	Type        enum.TransactionType
	Date        string
	Category    string
	Amount      decimal.Decimal
	Description string
	Quantity    *float64
	Unit        *string
}

// Append validates the input, records the entry at the head of the ledger
// and persists the full state. A successful append also emits a
// TransactionRecorded event, best effort.
func (s *LedgerService) Append(ctx context.Context, in AppendEntryInput) (*entity.Transaction, error) {
	var fieldErrs []apperror.FieldError
	if !in.Type.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "type", Message: "type must be SALE or EXPENSE"})
	}
	if in.Category == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "category", Message: "category is required"})
	}
	if in.Amount.IsNegative() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "amount", Message: "amount must not be negative"})
	}
	date := in.Date
	if date == "" {
		date = s.now().Format(entity.DateLayout)
	} else if _, err := time.Parse(entity.DateLayout, date); err != nil {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "date", Message: "date must be in YYYY-MM-DD form"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	tx := entity.Transaction{
		ID:          utils.NewEntryID(),
		Date:        date,
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
	}

	if err := s.state.AppendTransaction(ctx, tx); err != nil {
		return nil, err
	}

	s.publishRecorded(ctx, tx)
	return &tx, nil
}

func (s *LedgerService) publishRecorded(ctx context.Context, tx entity.Transaction) {
	state := s.state.Snapshot()
	event := events.TransactionRecorded{
		TransactionID: tx.ID,
		Type:          tx.Type.String(),
		Category:      tx.Category,
		Amount:        tx.Amount.String(),
		Date:          tx.Date,
		RecordedAt:    s.now().UTC(),
	}
	if state.BusinessConfig != nil {
		event.BusinessName = state.BusinessConfig.Name
		event.BusinessType = state.BusinessConfig.Type.String()
		event.Currency = state.BusinessConfig.Currency
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Warning: failed to publish transaction event: %v", err)
	}
}

// List returns the ledger in display order: date descending, ties in ledger
// order.
func (s *LedgerService) List(_ context.Context) []entity.Transaction {
	return SortForDisplay(s.state.Snapshot().Transactions)
}

// Aggregates recomputes the ledger totals.
func (s *LedgerService) Aggregates(_ context.Context) entity.AggregateSnapshot {
	return ComputeSnapshot(s.state.Snapshot().Transactions)
}
