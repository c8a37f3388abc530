package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter wires the fixed dispatch table. Every standard method on a
// registered path is treated identically; anything unmatched falls through
// to the catch-all 404.
func NewRouter(handler *BenchHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Panic recovery only; the benchmark hot path carries no other middleware.
	e.Use(middleware.Recover())

	e.Any("/hash", handler.Hash)
	e.Any("/health", handler.HealthCheck)
	e.RouteNotFound("/*", handler.NotFound)

	return e
}
