package http

import (
	"net/http"

	"github.com/huseyinbabal/benchmarks/usecase"
	"github.com/labstack/echo/v4"
)

type BenchHandler struct {
	hashService *usecase.HashService
}

func NewBenchHandler(hashService *usecase.HashService) *BenchHandler {
	return &BenchHandler{hashService: hashService}
}

// Hash runs one fixed-cost hash chain and returns the result as JSON.
// Hashing cannot fail, so this handler has no error path.
func (h *BenchHandler) Hash(c echo.Context) error {
	return c.JSON(http.StatusOK, h.hashService.Execute())
}

// HealthCheck reports liveness. It is not part of the benchmark workload.
func (h *BenchHandler) HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// NotFound answers every path outside the fixed route table.
func (h *BenchHandler) NotFound(c echo.Context) error {
	return c.String(http.StatusNotFound, "Not Found")
}
