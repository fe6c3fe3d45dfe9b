package explain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"whyEngine/domain"
)

func scoredFixture() []domain.ScoredItem {
	return []domain.ScoredItem{
		{
			Item:      domain.Item{ItemID: "a", Name: "Masala Dosa", Category: "food", Price: 60, TimeMinutes: 15, ComfortScore: 0.8, ExplorationScore: 0.3},
			Breakdown: domain.ScoreBreakdown{BudgetEfficiency: 0.7, TimeEfficiency: 0.5, Alignment: 0.55},
			Score:     0.58,
		},
		{
			Item:        domain.Item{ItemID: "b", Name: "Night Market Walk", Category: "outdoor", Price: 0, TimeMinutes: 25, ComfortScore: 0.2, ExplorationScore: 0.9},
			Breakdown:   domain.ScoreBreakdown{BudgetEfficiency: 1.0, TimeEfficiency: 0.17, Alignment: 0.55},
			Score:       0.56,
			IsDiscovery: true,
		},
	}
}

type fakeGenerator struct {
	explanations []domain.Explanation
	err          error
	calls        int
}

func (g *fakeGenerator) GenerateExplanations(
	ctx context.Context,
	query string,
	constraints domain.Constraints,
	preset string,
	items []domain.ScoredItem,
) ([]domain.Explanation, error) {
	g.calls++
	return g.explanations, g.err
}

func TestAnnotateCopiesNumericFields(t *testing.T) {
	svc := NewService(nil)
	c := domain.Constraints{Budget: 200, TimeLimit: 30, ComfortVsExploration: 0.5}

	recs := svc.Annotate(context.Background(), "cheap lunch", c, "", scoredFixture())

	if len(recs) != 2 {
		t.Fatalf("recs = %d, want 2", len(recs))
	}
	if recs[0].ItemID != "a" || recs[0].Score != 0.58 {
		t.Errorf("rec[0] numeric fields wrong: %+v", recs[0])
	}
	if recs[0].ScoreBreakdown.BudgetEfficiency != 0.7 {
		t.Errorf("breakdown not copied: %+v", recs[0].ScoreBreakdown)
	}
	if !recs[1].IsDiscovery {
		t.Error("discovery flag lost")
	}
}

func TestAnnotateUsesGenerator(t *testing.T) {
	gen := &fakeGenerator{explanations: []domain.Explanation{
		{ItemID: "a", WhyRecommended: "custom why", Tradeoffs: "custom tradeoffs"},
	}}
	svc := NewService(gen)
	c := domain.Constraints{Budget: 200, TimeLimit: 30, ComfortVsExploration: 0.5}

	recs := svc.Annotate(context.Background(), "", c, "student", scoredFixture())

	if gen.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", gen.calls)
	}
	if recs[0].WhyRecommended != "custom why" {
		t.Errorf("why_recommended = %q, want generator text", recs[0].WhyRecommended)
	}
	// item b got no explanation from the generator; neutral default applies
	if recs[1].WhyRecommended == "" {
		t.Error("missing explanation entry should get a neutral default")
	}
}

func TestAnnotateFallsBackOnGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := NewService(gen)
	c := domain.Constraints{Budget: 200, TimeLimit: 30, ComfortVsExploration: 0.5}

	recs := svc.Annotate(context.Background(), "", c, "", scoredFixture())

	// numeric result survives the failure and templates fill the prose
	if recs[0].Score != 0.58 {
		t.Errorf("score lost on fallback: %v", recs[0].Score)
	}
	if recs[0].WhyRecommended == "" || recs[1].WhyRecommended == "" {
		t.Error("template fallback left empty explanations")
	}
	if recs[1].DiscoveryReason == "" {
		t.Error("discovery item missing discovery_reason from templates")
	}
}

func TestAnnotateEmptyResult(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewService(gen)
	c := domain.Constraints{Budget: 200, TimeLimit: 30, ComfortVsExploration: 0.5}

	recs := svc.Annotate(context.Background(), "", c, "", nil)
	if len(recs) != 0 {
		t.Errorf("recs = %d, want 0", len(recs))
	}
	if gen.calls != 0 {
		t.Error("generator must not be called for an empty result")
	}
}

func TestTemplateExplanations(t *testing.T) {
	c := domain.Constraints{Budget: 200, TimeLimit: 30, ComfortVsExploration: 0.5}
	explanations := TemplateExplanations(c, scoredFixture())

	if len(explanations) != 2 {
		t.Fatalf("explanations = %d, want 2", len(explanations))
	}

	first := explanations[0]
	if first.ItemID != "a" {
		t.Errorf("id = %s, want a", first.ItemID)
	}
	if !strings.Contains(first.WhyRecommended, "0.58") {
		t.Errorf("why_recommended should reference the score: %q", first.WhyRecommended)
	}
	if first.WhyOthersLower == "" {
		t.Error("top pick missing why_others_lower")
	}
	if first.DiscoveryReason != "" {
		t.Error("non-discovery item must not carry a discovery_reason")
	}

	second := explanations[1]
	if second.DiscoveryReason == "" {
		t.Error("discovery item missing discovery_reason")
	}
	if !strings.Contains(second.WhyRecommended, "Night Market Walk") {
		t.Errorf("discovery text should name the item: %q", second.WhyRecommended)
	}
}
