package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"velorabook/pkg/booktype"
	"velorabook/pkg/schema"
)

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "VeloraBook API",
		"status":  "ok",
	})
}

// GET /api/book-types
func (s *Server) handleGetBookTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, booktype.All())
}

// GET /api/book/schema
func (s *Server) handleGetBookSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, schema.BookSchema)
}

var handleGetMetrics = echo.WrapHandler(promhttp.Handler())
