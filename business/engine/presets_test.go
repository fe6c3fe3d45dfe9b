package engine

import (
	"context"
	"errors"
	"testing"

	"whyEngine/domain"
)

type fakePresetRepo struct {
	presets map[string]domain.PresetConfig
	err     error
}

func (r *fakePresetRepo) GetPreset(ctx context.Context, name string) (domain.PresetConfig, bool, error) {
	if r.err != nil {
		return domain.PresetConfig{}, false, r.err
	}
	cfg, ok := r.presets[name]
	return cfg, ok, nil
}

func (r *fakePresetRepo) UpsertPreset(ctx context.Context, cfg domain.PresetConfig) error {
	if r.presets == nil {
		r.presets = make(map[string]domain.PresetConfig)
	}
	r.presets[cfg.Name] = cfg
	return nil
}

func newTestService(t *testing.T, repo PresetRepository) *Service {
	t.Helper()
	svc, err := NewService(repo, DefaultConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestResolvePresetCompiledTable(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		preset     string
		wantBudget float64
		wantAlign  float64
		wantRatio  float64
	}{
		{"empty name means default", "", 0.35, 0.35, 0.10},
		{"default by name", "default", 0.35, 0.35, 0.10},
		{"student", "student", 0.50, 0.20, 0.10},
		{"saver", "saver", 0.60, 0.25, 0.10},
		{"explorer", "explorer", 0.15, 0.70, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := svc.ResolvePreset(ctx, tt.preset)
			if err != nil {
				t.Fatalf("ResolvePreset(%q): %v", tt.preset, err)
			}
			if w.WBudget != tt.wantBudget || w.WAlignment != tt.wantAlign || w.DiscoveryRatio != tt.wantRatio {
				t.Errorf("got (%v, %v, ratio %v), want (%v, %v, ratio %v)",
					w.WBudget, w.WAlignment, w.DiscoveryRatio, tt.wantBudget, tt.wantAlign, tt.wantRatio)
			}
		})
	}
}

func TestResolvePresetUnknownName(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.ResolvePreset(context.Background(), "studnet")
	if !errors.Is(err, ErrInvalidPreset) {
		t.Fatalf("err = %v, want ErrInvalidPreset", err)
	}
}

func TestResolvePresetStoredOverrideWins(t *testing.T) {
	repo := &fakePresetRepo{presets: map[string]domain.PresetConfig{
		"student": {Name: "student", WBudget: 0.45, WTime: 0.35, WAlignment: 0.20, DiscoveryRatio: 0.12},
	}}
	svc := newTestService(t, repo)

	w, err := svc.ResolvePreset(context.Background(), "student")
	if err != nil {
		t.Fatalf("ResolvePreset: %v", err)
	}
	if w.WBudget != 0.45 || w.DiscoveryRatio != 0.12 {
		t.Errorf("stored override not applied: got (%v, ratio %v)", w.WBudget, w.DiscoveryRatio)
	}
}

// A stored row that violates the engine bounds is ignored in favor of
// the compiled profile.
func TestResolvePresetInvalidStoredFallsBack(t *testing.T) {
	repo := &fakePresetRepo{presets: map[string]domain.PresetConfig{
		"student": {Name: "student", WBudget: -1, WTime: 0.3, WAlignment: 0.2, DiscoveryRatio: 0.9},
	}}
	svc := newTestService(t, repo)

	w, err := svc.ResolvePreset(context.Background(), "student")
	if err != nil {
		t.Fatalf("ResolvePreset: %v", err)
	}
	if w.WBudget != 0.50 {
		t.Errorf("expected compiled student profile, got w_budget %v", w.WBudget)
	}
}

func TestResolvePresetRepoErrorFallsBack(t *testing.T) {
	repo := &fakePresetRepo{err: errors.New("connection refused")}
	svc := newTestService(t, repo)

	w, err := svc.ResolvePreset(context.Background(), "saver")
	if err != nil {
		t.Fatalf("ResolvePreset: %v", err)
	}
	if w.WBudget != 0.60 {
		t.Errorf("expected compiled saver profile, got w_budget %v", w.WBudget)
	}
}

func TestWeightConfigValidate(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		w       WeightConfig
		wantErr bool
	}{
		{"valid", WeightConfig{0.4, 0.3, 0.3, 0.10}, false},
		{"negative weight", WeightConfig{-0.1, 0.3, 0.3, 0.10}, true},
		{"all zero weights", WeightConfig{0, 0, 0, 0.10}, true},
		{"ratio below range", WeightConfig{0.4, 0.3, 0.3, 0.05}, true},
		{"ratio above range", WeightConfig{0.4, 0.3, 0.3, 0.30}, true},
		{"ratio at bounds", WeightConfig{0.4, 0.3, 0.3, 0.15}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
