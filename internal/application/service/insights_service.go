package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/pkg/apperror"
)

// ErrStaleRequest marks an insight response that was superseded by a newer
// request while it was in flight. Callers discard it; only the latest request
// may win.
var ErrStaleRequest = errors.New("insight response superseded by a newer request")

// InsightGenerator turns a prompt into a structured insight. Implemented by
// the Gemini client; tests swap in fakes.
type InsightGenerator interface {
	Generate(ctx context.Context, prompt string) (*entity.Insight, error)
}

// InsightsService builds the analysis prompt from the current state and asks
// the generator for insights. Failure is soft: the caller gets (nil, error)
// and renders the "no insights yet" placeholder; nothing is retried.
type InsightsService struct {
	state     *StateService
	generator InsightGenerator
	seq       atomic.Uint64
}

// NewInsightsService creates a new insights service.
func NewInsightsService(state *StateService, generator InsightGenerator) *InsightsService {
	return &InsightsService{state: state, generator: generator}
}

// Fetch requests insights for the current aggregate state. Each call stamps a
// fresh sequence number; if another call starts before this one resolves, the
// older response comes back as ErrStaleRequest.
func (s *InsightsService) Fetch(ctx context.Context) (*entity.Insight, error) {
	state := s.state.Snapshot()
	if !state.Configured() {
		return nil, apperror.ErrNotConfigured
	}

	token := s.seq.Add(1)

	insight, err := s.generator.Generate(ctx, BuildPrompt(state))
	if err != nil {
		return nil, err
	}
	if s.seq.Load() != token {
		return nil, ErrStaleRequest
	}
	return insight, nil
}

// BuildPrompt embeds the aggregate snapshot, business type and headcounts
// into the analysis prompt.
func BuildPrompt(state *entity.AppState) string {
	totals := ComputeSnapshot(state.Transactions)

	var b strings.Builder
	b.WriteString("Analyze the following business data and provide 3-4 actionable insights for the business owner.\n")
	fmt.Fprintf(&b, "Business Type: %s\n", state.BusinessConfig.Type)
	fmt.Fprintf(&b, "Total Sales: %s\n", totals.TotalSales)
	fmt.Fprintf(&b, "Total Expenses: %s\n", totals.TotalExpenses)
	fmt.Fprintf(&b, "Business Inventory Count: %d\n", len(state.Inventory))
	fmt.Fprintf(&b, "Employees: %d\n", len(state.Employees))
	b.WriteString("\nFormat the response as JSON with fields 'summary' (string) and 'recommendations' (array of strings).")
	return b.String()
}
