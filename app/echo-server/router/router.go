package router

import (
	"whyEngine/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	api.POST("/recommend", handler.Recommend)
}

func SetCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	api.GET("/domains", handler.GetDomains)
	api.GET("/catalog/:domain", handler.GetItems)
}

func SetPresetAdminRoutes(api *echo.Group, handler *rest.PresetAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/presets", authRequired, adminOnly)

	admin.GET("", handler.GetPreset)
	admin.PUT("", handler.UpsertPreset)
}
