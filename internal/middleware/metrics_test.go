package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/dethrtrns/techwondoe-test-task/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	t.Run("counts requests by method, path and status", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/get", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})

		before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/get", "200"))

		req := httptest.NewRequest(http.MethodGet, "/api/get", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/get", "200"))
		assert.Equal(t, before+1, after)
	})

	t.Run("labels unmatched routes with a fixed path", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
		assert.Equal(t, before+1, after)
	})

	t.Run("in-flight gauge returns to its prior value", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/get", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		before := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		req := httptest.NewRequest(http.MethodGet, "/api/get", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, before, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
	})
}
