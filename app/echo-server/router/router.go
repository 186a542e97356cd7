package router

import (
	"myBestDeals/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupDealsRoutes(api *echo.Group, handler *rest.DealsHandler) {
	deals := api.Group("/deals")

	deals.GET("", handler.GetTopDeals)
}

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/healthz", handler.Health)
}
