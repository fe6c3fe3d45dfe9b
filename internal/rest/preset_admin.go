package rest

import (
	"net/http"

	"whyEngine/business/engine"
	"whyEngine/domain"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PresetAdminHandler struct {
	validate   *validator.Validate
	presetRepo engine.PresetRepository
	engineCfg  engine.Config
}

func NewPresetAdminHandler(presetRepo engine.PresetRepository, engineCfg engine.Config) *PresetAdminHandler {
	return &PresetAdminHandler{
		validate:   validator.New(),
		presetRepo: presetRepo,
		engineCfg:  engineCfg,
	}
}

type UpsertPresetRequest struct {
	Name           string  `json:"name" validate:"required"`
	WBudget        float64 `json:"w_budget" validate:"gte=0"`
	WTime          float64 `json:"w_time" validate:"gte=0"`
	WAlignment     float64 `json:"w_alignment" validate:"gte=0"`
	DiscoveryRatio float64 `json:"discovery_ratio" validate:"gt=0"`
}

// GET /api/v1/admin/presets?name=student
func (h *PresetAdminHandler) GetPreset(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.QueryParam("name")

	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name is required",
		})
	}

	cfg, ok, err := h.presetRepo.GetPreset(ctx, name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "preset not found",
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/presets
func (h *PresetAdminHandler) UpsertPreset(c echo.Context) error {
	var req UpsertPresetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	// reject profiles the engine would refuse to serve
	w := engine.WeightConfig{
		WBudget:        req.WBudget,
		WTime:          req.WTime,
		WAlignment:     req.WAlignment,
		DiscoveryRatio: req.DiscoveryRatio,
	}
	if err := w.Validate(h.engineCfg); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	cfg := domain.PresetConfig{
		Name:           req.Name,
		WBudget:        req.WBudget,
		WTime:          req.WTime,
		WAlignment:     req.WAlignment,
		DiscoveryRatio: req.DiscoveryRatio,
	}

	if err := h.presetRepo.UpsertPreset(c.Request().Context(), cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "preset saved",
		"preset":  cfg,
	})
}
