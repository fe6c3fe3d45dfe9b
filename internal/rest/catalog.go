package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"whyEngine/business/catalog"
	"whyEngine/pkg/logger"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService CatalogService
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		timeout:        10 * time.Second,
	}
}

// GET /api/v1/domains
func (h *CatalogHandler) GetDomains(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	domains, err := h.catalogService.Domains(ctx)
	if err != nil {
		logger.Error("Failed to list domains", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"domains": domains,
	})
}

// GET /api/v1/catalog/:domain
func (h *CatalogHandler) GetItems(c echo.Context) error {
	domainName := c.Param("domain")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.catalogService.Items(ctx, domainName)
	if err != nil {
		if errors.Is(err, catalog.ErrDomainNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to load catalog", "domain", domainName, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"domain": domainName,
		"items":  items,
	})
}
