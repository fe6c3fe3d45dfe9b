package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"whyEngine/domain"
)

func TestRecommendSingleSurvivor(t *testing.T) {
	svc := newTestService(t, nil)

	items := []domain.Item{
		makeItem("a", "food", 50, 10, 0.6, 0.4),
	}
	c := domain.Constraints{Budget: 100, TimeLimit: 30, ComfortVsExploration: 0.5}

	result, err := svc.Recommend(context.Background(), items, c, "")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if result.TotalItems != 1 || result.FilteredOut != 0 {
		t.Errorf("totals = (%d, %d), want (1, 0)", result.TotalItems, result.FilteredOut)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(result.Recommendations))
	}

	rec := result.Recommendations[0]
	if rec.IsDiscovery {
		t.Error("single survivor must not be tagged discovery")
	}
	if rec.Score == 0 {
		t.Error("score not computed")
	}
	if rec.Breakdown.BudgetEfficiency != 0.5 {
		t.Errorf("budget_efficiency = %v, want 0.5", rec.Breakdown.BudgetEfficiency)
	}
}

func TestRecommendFiltersOverBudgetItem(t *testing.T) {
	svc := newTestService(t, nil)

	items := []domain.Item{
		makeItem("cheap", "food", 50, 10, 0.6, 0.4),
		makeItem("pricey", "food", 150, 10, 0.6, 0.4),
	}
	c := domain.Constraints{Budget: 100, TimeLimit: 30, ComfortVsExploration: 0.5}

	result, err := svc.Recommend(context.Background(), items, c, "")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if result.FilteredOut != 1 {
		t.Errorf("filtered_out = %d, want 1", result.FilteredOut)
	}
	for _, rec := range result.Recommendations {
		if rec.Item.ItemID == "pricey" {
			t.Error("over-budget item surfaced in recommendations")
		}
	}
}

func TestRecommendTwentySurvivors(t *testing.T) {
	svc := newTestService(t, nil)

	items := make([]domain.Item, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, makeItem(
			fmt.Sprintf("i%02d", i),
			[]string{"food", "cafe", "outdoor"}[i%3],
			float64(10+i*2), float64(5+i), 0.5, 0.5,
		))
	}
	c := domain.Constraints{Budget: 500, TimeLimit: 120, ComfortVsExploration: 0.5}

	tests := []struct {
		preset        string
		wantDiscovery int
	}{
		{"", 2},         // ratio 0.10: round(0.10 * 20)
		{"explorer", 3}, // ratio 0.15: round(0.15 * 20)
	}

	for _, tt := range tests {
		t.Run("preset_"+tt.preset, func(t *testing.T) {
			result, err := svc.Recommend(context.Background(), items, c, tt.preset)
			if err != nil {
				t.Fatalf("Recommend: %v", err)
			}

			primary := 0
			discovery := 0
			for _, rec := range result.Recommendations {
				if rec.IsDiscovery {
					discovery++
				} else {
					primary++
				}
			}

			if primary != 5 {
				t.Errorf("primary count = %d, want 5", primary)
			}
			if discovery != tt.wantDiscovery {
				t.Errorf("discovery count = %d, want %d", discovery, tt.wantDiscovery)
			}
		})
	}
}

func TestRecommendInvalidConstraints(t *testing.T) {
	svc := newTestService(t, nil)
	items := []domain.Item{makeItem("a", "food", 50, 10, 0.5, 0.5)}

	tests := []struct {
		name string
		c    domain.Constraints
	}{
		{"zero budget", domain.Constraints{Budget: 0, TimeLimit: 30, ComfortVsExploration: 0.5}},
		{"negative budget", domain.Constraints{Budget: -10, TimeLimit: 30, ComfortVsExploration: 0.5}},
		{"zero time limit", domain.Constraints{Budget: 100, TimeLimit: 0, ComfortVsExploration: 0.5}},
		{"slider below range", domain.Constraints{Budget: 100, TimeLimit: 30, ComfortVsExploration: -0.1}},
		{"slider above range", domain.Constraints{Budget: 100, TimeLimit: 30, ComfortVsExploration: 1.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Recommend(context.Background(), items, tt.c, "")
			if !errors.Is(err, ErrInvalidConstraints) {
				t.Errorf("err = %v, want ErrInvalidConstraints", err)
			}
		})
	}
}

func TestRecommendInvalidPresetAborts(t *testing.T) {
	svc := newTestService(t, nil)
	items := []domain.Item{makeItem("a", "food", 50, 10, 0.5, 0.5)}
	c := domain.Constraints{Budget: 100, TimeLimit: 30, ComfortVsExploration: 0.5}

	_, err := svc.Recommend(context.Background(), items, c, "no-such-preset")
	if !errors.Is(err, ErrInvalidPreset) {
		t.Fatalf("err = %v, want ErrInvalidPreset", err)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	svc := newTestService(t, nil)
	c := domain.Constraints{Budget: 100, TimeLimit: 30, ComfortVsExploration: 0.5}

	result, err := svc.Recommend(context.Background(), nil, c, "")
	if err != nil {
		t.Fatalf("empty catalog must not error: %v", err)
	}
	if len(result.Recommendations) != 0 || result.TotalItems != 0 || result.FilteredOut != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}

func TestRecommendAllFilteredOut(t *testing.T) {
	svc := newTestService(t, nil)
	items := []domain.Item{
		makeItem("a", "food", 500, 10, 0.5, 0.5),
		makeItem("b", "food", 50, 300, 0.5, 0.5),
	}
	c := domain.Constraints{Budget: 100, TimeLimit: 30, ComfortVsExploration: 0.5}

	result, err := svc.Recommend(context.Background(), items, c, "")
	if err != nil {
		t.Fatalf("all filtered out must not error: %v", err)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("recommendations = %d, want 0", len(result.Recommendations))
	}
	if result.FilteredOut != result.TotalItems {
		t.Errorf("filtered_out = %d, want %d", result.FilteredOut, result.TotalItems)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	svc := newTestService(t, nil)

	items := make([]domain.Item, 0, 15)
	for i := 0; i < 15; i++ {
		items = append(items, makeItem(
			fmt.Sprintf("i%02d", i), "food",
			float64(20+i), 10, 0.5, 0.5,
		))
	}
	c := domain.Constraints{Budget: 100, TimeLimit: 60, ComfortVsExploration: 0.3}

	first, err := svc.Recommend(context.Background(), items, c, "student")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	for run := 0; run < 5; run++ {
		again, err := svc.Recommend(context.Background(), items, c, "student")
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		if len(again.Recommendations) != len(first.Recommendations) {
			t.Fatalf("run %d: length changed", run)
		}
		for i := range first.Recommendations {
			a, b := first.Recommendations[i], again.Recommendations[i]
			if a.Item.ItemID != b.Item.ItemID || a.Score != b.Score || a.IsDiscovery != b.IsDiscovery {
				t.Fatalf("run %d: position %d differs", run, i)
			}
		}
	}
}

func TestRecommendCancelledContext(t *testing.T) {
	svc := newTestService(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Recommend(ctx, nil, domain.Constraints{Budget: 100, TimeLimit: 30}, "")
	if err == nil {
		t.Fatal("expected context error")
	}
}
