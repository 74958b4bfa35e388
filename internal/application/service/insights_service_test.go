package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/infrastructure/store"
	"github.com/bizscale/bizscale-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

type fakeGenerator struct {
	insight *entity.Insight
	err     error
	// onGenerate runs while the request is "in flight", before returning.
	onGenerate func()
	prompts    []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (*entity.Insight, error) {
	g.prompts = append(g.prompts, prompt)
	if g.onGenerate != nil {
		cb := g.onGenerate
		g.onGenerate = nil
		cb()
	}
	return g.insight, g.err
}

func TestFetchReturnsInsight(t *testing.T) {
	state, _ := newActiveState(t)
	gen := &fakeGenerator{insight: &entity.Insight{
		Summary:         "Healthy margins.",
		Recommendations: []string{"Keep at it"},
	}}
	svc := NewInsightsService(state, gen)

	got, err := svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got.Summary != "Healthy margins." {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestFetchSoftFailsOnGeneratorError(t *testing.T) {
	state, _ := newActiveState(t)
	gen := &fakeGenerator{err: errors.New("transport down")}
	svc := NewInsightsService(state, gen)

	got, err := svc.Fetch(context.Background())
	if err == nil {
		t.Fatalf("Fetch() = %+v, want error", got)
	}
	if got != nil {
		t.Errorf("Fetch() returned an insight alongside an error: %+v", got)
	}
}

func TestFetchRequiresConfiguration(t *testing.T) {
	state := NewStateService(store.NewMemoryStore(), true)
	if err := state.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	svc := NewInsightsService(state, &fakeGenerator{})

	if _, err := svc.Fetch(context.Background()); !errors.Is(err, apperror.ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
}

func TestFetchDiscardsStaleResponse(t *testing.T) {
	state, _ := newActiveState(t)
	gen := &fakeGenerator{insight: &entity.Insight{Summary: "old"}}
	svc := NewInsightsService(state, gen)

	// While the first request is in flight, a second one starts and resolves.
	gen.onGenerate = func() {
		if _, err := svc.Fetch(context.Background()); err != nil {
			t.Errorf("nested Fetch() error = %v", err)
		}
	}

	_, err := svc.Fetch(context.Background())
	if !errors.Is(err, ErrStaleRequest) {
		t.Fatalf("error = %v, want ErrStaleRequest", err)
	}
}

func TestBuildPrompt(t *testing.T) {
	state, _ := newActiveState(t)
	if err := state.AppendTransaction(context.Background(), entity.Transaction{
		ID: "t1", Date: "2026-08-29", Type: "SALE", Category: "Food",
		Amount: decimal.NewFromInt(250),
	}); err != nil {
		t.Fatal(err)
	}

	prompt := BuildPrompt(state.Snapshot())
	for _, want := range []string{
		"Business Type: RESTAURANT",
		"Total Sales: 250",
		"Total Expenses: 0",
		"Business Inventory Count: 0",
		"Employees: 0",
		"'summary'",
		"'recommendations'",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
