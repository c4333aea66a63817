package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiepages/indiepages/engine/locator"
	"github.com/indiepages/indiepages/engine/redirect"
	"github.com/indiepages/indiepages/engine/shop"
	"github.com/indiepages/indiepages/pkg/logger"
)

func TestLoggerMiddleware(t *testing.T) {
	t.Run("Should log completed requests", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		var buf bytes.Buffer
		log := logger.NewLogger(&logger.Config{Level: logger.InfoLevel, Output: &buf})
		router := gin.New()
		router.Use(LoggerMiddleware(log))
		router.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))

		require.Equal(t, 200, rec.Code)
		out := buf.String()
		assert.Contains(t, out, "Request completed")
		assert.Contains(t, out, "/ping?x=1")
	})
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("Should allow configured origins", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(CORSMiddleware([]string{"https://indiepages.example"}))
		router.GET("/", func(c *gin.Context) { c.Status(200) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://indiepages.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "https://indiepages.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should not reflect unknown origins", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(CORSMiddleware([]string{"https://indiepages.example"}))
		router.GET("/", func(c *gin.Context) { c.Status(200) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should short-circuit preflight requests", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(CORSMiddleware([]string{"https://indiepages.example"}))
		router.GET("/", func(c *gin.Context) { c.Status(200) })

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

		assert.Equal(t, 204, rec.Code)
	})
}

func TestRedirectMiddleware(t *testing.T) {
	t.Run("Should emit a single permanent redirect and halt the chain", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		holder := locator.NewHolder()
		holder.Rebuild([]shop.Shop{{ID: 1, Name: "Oak Books", Live: true}})
		router := gin.New()
		router.Use(RedirectMiddleware(redirect.New(holder), nil))
		reached := false
		router.GET("/directory/states", func(c *gin.Context) { reached = true })

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/directory/states", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/directory", rec.Header().Get("Location"))
		assert.False(t, reached, "matched requests must not reach the handler")
	})

	t.Run("Should pass canonical paths through untouched", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(RedirectMiddleware(redirect.New(locator.NewHolder()), nil))
		router.GET("/directory", func(c *gin.Context) { c.Status(200) })

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/directory", nil))

		assert.Equal(t, 200, rec.Code)
	})
}
