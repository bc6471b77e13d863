package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"simai/pkg/metrics"
)

func TestCountRequests(t *testing.T) {
	e := echo.New()
	e.Use(CountRequests)
	e.GET("/painel", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/quebrado", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "x")
	})

	okBefore := testutil.ToFloat64(metrics.ControlRequests.WithLabelValues("GET", "/painel", "200"))
	errBefore := testutil.ToFloat64(metrics.ControlRequests.WithLabelValues("GET", "/quebrado", "418"))

	for _, path := range []string{"/painel", "/quebrado"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(metrics.ControlRequests.WithLabelValues("GET", "/painel", "200")) - okBefore; got != 1 {
		t.Errorf("ok requests counted %v times", got)
	}
	if got := testutil.ToFloat64(metrics.ControlRequests.WithLabelValues("GET", "/quebrado", "418")) - errBefore; got != 1 {
		t.Errorf("error requests counted %v times", got)
	}
}
