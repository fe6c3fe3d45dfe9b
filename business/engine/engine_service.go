package engine

import (
	"context"
	"fmt"

	"whyEngine/domain"
	"whyEngine/pkg/logger"
)

// Service is the deterministic constraint-and-ranking engine. It is
// stateless per request: every call takes a catalog snapshot plus the
// request constraints and produces a fresh result. Scores are never
// cached across requests because they depend on the request's own
// constraints.
type Service struct {
	presetRepo PresetRepository
	cfg        Config
	presets    map[string]WeightConfig
}

// NewService validates the compiled preset table at startup so a bad
// weight profile is a boot failure, not a per-request surprise.
// presetRepo may be nil; stored overrides are then disabled.
func NewService(presetRepo PresetRepository, cfg Config) (*Service, error) {
	if cfg.TopK <= 0 {
		return nil, fmt.Errorf("top_k must be greater than 0, got %d", cfg.TopK)
	}
	if cfg.RatioMin < 0 || cfg.RatioMax < cfg.RatioMin {
		return nil, fmt.Errorf("invalid discovery ratio range [%v, %v]", cfg.RatioMin, cfg.RatioMax)
	}

	presets := defaultPresets()
	for name, w := range presets {
		if err := w.Validate(cfg); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}

	return &Service{
		presetRepo: presetRepo,
		cfg:        cfg,
		presets:    presets,
	}, nil
}

// ResolvePreset maps a preset name to its weight profile. An empty name
// resolves to the default profile. Stored overrides win over the
// compiled table unless they fail validation. An unrecognized name is an
// ErrInvalidPreset, never a silent fallback.
func (s *Service) ResolvePreset(ctx context.Context, name string) (WeightConfig, error) {
	key := name
	if key == "" {
		key = PresetDefault
	}

	if s.presetRepo != nil {
		if stored, ok, err := s.presetRepo.GetPreset(ctx, key); err == nil && ok {
			w := WeightConfig{
				WBudget:        stored.WBudget,
				WTime:          stored.WTime,
				WAlignment:     stored.WAlignment,
				DiscoveryRatio: stored.DiscoveryRatio,
			}
			vErr := w.Validate(s.cfg)
			if vErr == nil {
				return w, nil
			}
			logger.Warn("stored preset failed validation, using compiled profile",
				"preset", key,
				"error", vErr,
			)
		}
	}

	w, ok := s.presets[key]
	if !ok {
		return WeightConfig{}, fmt.Errorf("%w: %q", ErrInvalidPreset, name)
	}
	return w, nil
}

// TopK returns the configured primary list size.
func (s *Service) TopK() int {
	return s.cfg.TopK
}

// Recommend runs the full pipeline: validate, hard-filter, score, rank,
// inject discovery. Validation failures abort before any scoring; empty
// catalogs and all-filtered-out outcomes return an empty result, not an
// error. The returned result is numerically complete before any
// explanation layer is involved.
func (s *Service) Recommend(
	ctx context.Context,
	items []domain.Item,
	constraints domain.Constraints,
	preset string,
) (domain.RecommendationResult, error) {

	if err := ctx.Err(); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}

	if err := constraints.Validate(); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("%w: %v", ErrInvalidConstraints, err)
	}

	weights, err := s.ResolvePreset(ctx, preset)
	if err != nil {
		return domain.RecommendationResult{}, err
	}

	survivors, filteredOut := ApplyHardConstraints(items, constraints)
	scored := ScoreSurvivors(survivors, constraints, weights)
	ranked := Rank(scored)
	final := InjectDiscovery(ranked, s.cfg.TopK, weights.DiscoveryRatio)

	discoveryCount := 0
	for _, rec := range final {
		if rec.IsDiscovery {
			discoveryCount++
		}
	}

	presetLabel := preset
	if presetLabel == "" {
		presetLabel = PresetDefault
	}
	FilteredOutTotal.Add(float64(filteredOut))
	DiscoveryItemsTotal.WithLabelValues(presetLabel).Add(float64(discoveryCount))

	tid := TraceIDFromContext(ctx)
	logger.Debug("engine_recommend",
		"trace_id", tid,
		"preset", presetLabel,
		"total_items", len(items),
		"filtered_out", filteredOut,
		"survivors", len(survivors),
		"primary", min(len(ranked), s.cfg.TopK),
		"discovery", discoveryCount,
	)

	return domain.RecommendationResult{
		Recommendations: final,
		TotalItems:      len(items),
		FilteredOut:     filteredOut,
	}, nil
}
