package explain

import (
	"context"

	"whyEngine/business/engine"
	"whyEngine/domain"
	"whyEngine/pkg/logger"
	"whyEngine/pkg/metrics"
)

// ExplanationGenerator produces prose for an already-ranked result. It
// consumes the numeric breakdowns and must never influence ranking.
type ExplanationGenerator interface {
	GenerateExplanations(
		ctx context.Context,
		query string,
		constraints domain.Constraints,
		preset string,
		items []domain.ScoredItem,
	) ([]domain.Explanation, error)
}

// Service turns a scored result into response views with explanation
// text. The generator (typically an LLM call) is optional; template
// explanations always work, so a generator failure costs prose quality,
// never the numeric result.
type Service struct {
	generator ExplanationGenerator
}

func NewService(generator ExplanationGenerator) *Service {
	return &Service{generator: generator}
}

// Annotate builds the response views for a ranked list. The numeric
// fields are copied from the engine output before any generator call is
// attempted; generator errors degrade to templates.
func (s *Service) Annotate(
	ctx context.Context,
	query string,
	constraints domain.Constraints,
	preset string,
	items []domain.ScoredItem,
) []domain.Recommendation {

	recs := make([]domain.Recommendation, 0, len(items))
	for _, item := range items {
		recs = append(recs, domain.Recommendation{
			ItemID:           item.Item.ItemID,
			Name:             item.Item.Name,
			Category:         item.Item.Category,
			Description:      item.Item.Description,
			Tags:             []string(item.Item.Tags),
			Price:            item.Item.Price,
			TimeMinutes:      item.Item.TimeMinutes,
			ComfortScore:     item.Item.ComfortScore,
			ExplorationScore: item.Item.ExplorationScore,
			Score:            item.Score,
			ScoreBreakdown:   item.Breakdown,
			IsDiscovery:      item.IsDiscovery,
		})
	}

	explanations := s.generate(ctx, query, constraints, preset, items)

	byID := make(map[string]domain.Explanation, len(explanations))
	for _, e := range explanations {
		byID[e.ItemID] = e
	}

	for i := range recs {
		e, ok := byID[recs[i].ItemID]
		if !ok {
			recs[i].WhyRecommended = "Meets your constraints."
			continue
		}
		recs[i].WhyRecommended = e.WhyRecommended
		recs[i].Tradeoffs = e.Tradeoffs
		recs[i].WhyOthersLower = e.WhyOthersLower
		recs[i].DiscoveryReason = e.DiscoveryReason
	}

	return recs
}

func (s *Service) generate(
	ctx context.Context,
	query string,
	constraints domain.Constraints,
	preset string,
	items []domain.ScoredItem,
) []domain.Explanation {

	if len(items) == 0 {
		return nil
	}

	if s.generator != nil {
		explanations, err := s.generator.GenerateExplanations(ctx, query, constraints, preset, items)
		if err == nil && len(explanations) > 0 {
			return explanations
		}
		if err != nil {
			logger.Warn("explanation generation failed, using templates",
				"trace_id", engine.TraceIDFromContext(ctx),
				"error", err,
			)
		}
		metrics.ExplainFallbacks.Inc()
	}

	return TemplateExplanations(constraints, items)
}
