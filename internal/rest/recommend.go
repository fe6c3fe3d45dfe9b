package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"whyEngine/business/catalog"
	"whyEngine/business/engine"
	"whyEngine/domain"
	"whyEngine/pkg/logger"
	"whyEngine/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type (
	RecommendHandler struct {
		validate       *validator.Validate
		catalogService CatalogService
		engineService  EngineService
		explainService ExplainService
		timeout        time.Duration
	}

	CatalogService interface {
		Items(ctx context.Context, domainName string) ([]domain.Item, error)
		Domains(ctx context.Context) ([]string, error)
	}

	EngineService interface {
		Recommend(ctx context.Context, items []domain.Item, constraints domain.Constraints, preset string) (domain.RecommendationResult, error)
	}

	ExplainService interface {
		Annotate(ctx context.Context, query string, constraints domain.Constraints, preset string, items []domain.ScoredItem) []domain.Recommendation
	}

	RecommendRequest struct {
		Query       string             `json:"query"`
		Domain      string             `json:"domain" validate:"required"`
		Constraints domain.Constraints `json:"constraints"`
		Preset      string             `json:"preset"`
	}

	RecommendResponse struct {
		Recommendations []domain.Recommendation `json:"recommendations"`
		TotalItems      int                     `json:"total_items"`
		FilteredOut     int                     `json:"filtered_out"`
		Domain          string                  `json:"domain"`
		ConstraintsUsed domain.Constraints      `json:"constraints_used"`
		PresetUsed      string                  `json:"preset_used,omitempty"`
	}
)

func NewRecommendHandler(catalogService CatalogService, engineService EngineService, explainService ExplainService) *RecommendHandler {
	return &RecommendHandler{
		validate:       validator.New(),
		catalogService: catalogService,
		engineService:  engineService,
		explainService: explainService,
		timeout:        30 * time.Second,
	}
}

// POST /api/v1/recommend
func (h *RecommendHandler) Recommend(c echo.Context) error {
	timer := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(timer).Seconds())
	}()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.catalogService.Items(ctx, req.Domain)
	if err != nil {
		if errors.Is(err, catalog.ErrDomainNotFound) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to load catalog", "domain", req.Domain, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	// constraint and preset validation are owned by the engine so the
	// recommend flow has a single source of truth for them
	result, err := h.engineService.Recommend(ctx, items, req.Constraints, req.Preset)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidConstraints) || errors.Is(err, engine.ErrInvalidPreset) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Recommendation failed", "domain", req.Domain, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	presetLabel := req.Preset
	if presetLabel == "" {
		presetLabel = engine.PresetDefault
	}
	metrics.RecommendRequests.WithLabelValues(req.Domain, presetLabel).Inc()

	// the numeric result is final here; explanation failures inside
	// Annotate degrade to templates and never reach this path
	recommendations := h.explainService.Annotate(ctx, req.Query, req.Constraints, req.Preset, result.Recommendations)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(RecommendResponse{
		Recommendations: recommendations,
		TotalItems:      result.TotalItems,
		FilteredOut:     result.FilteredOut,
		Domain:          req.Domain,
		ConstraintsUsed: req.Constraints,
		PresetUsed:      req.Preset,
	}))
}
