package fiber_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinicdesk/internal/logger"
	adapter "github.com/clinicdesk/clinicdesk/internal/logger/adapter/fiber"
)

// accessLine implements the access log json format.
type accessLine struct {
	IP     string `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Host   string `json:"host"`
	Error  string `json:"error"`
}

func newTestApp(cfg adapter.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	app.Use(adapter.New(cfg))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("hello test")
	})
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/fail", func(_ *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		targetPath string
		config     adapter.Config
		want       *accessLine
	}{
		{
			name:       "root path",
			targetPath: "/",
			want:       &accessLine{Status: fiber.StatusOK, URI: "/", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "query string is kept",
			targetPath: "/?test=123",
			want:       &accessLine{Status: fiber.StatusOK, URI: "/?test=123", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "unknown path",
			targetPath: "/api/unknown",
			want: &accessLine{
				Status: fiber.StatusNotFound,
				URI:    "/api/unknown",
				Method: fiber.MethodGet,
				Host:   "example.com",
				Error:  "Cannot GET /api/unknown",
			},
		},
		{
			name:       "chain error is logged",
			targetPath: "/fail",
			want: &accessLine{
				Status: fiber.StatusTeapot,
				URI:    "/fail",
				Method: fiber.MethodGet,
				Host:   "example.com",
				Error:  "short and stout",
			},
		},
		{
			name:       "health is logged by default",
			targetPath: "/health",
			want:       &accessLine{Status: fiber.StatusOK, URI: "/health", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "health is skipped when check alive logging is disabled",
			targetPath: "/health",
			config:     adapter.Config{Config: logger.Log{DisableCheckAlive: true}},
			want:       nil,
		},
		{
			name:       "next skips the middleware",
			targetPath: "/",
			config: adapter.Config{Next: func(_ *fiber.Ctx) bool {
				return true
			}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			cfg := tt.config
			cfg.Output = &buf

			resp, err := newTestApp(cfg).Test(httptest.NewRequest(fiber.MethodGet, tt.targetPath, nil))
			require.NoError(t, err)
			_ = resp.Body.Close()

			out := strings.TrimSpace(buf.String())

			if tt.want == nil {
				assert.Empty(t, out)
				return
			}

			var got accessLine
			require.NoError(t, json.Unmarshal([]byte(out), &got), "output: %s", out)

			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.URI, got.URI)
			assert.Equal(t, tt.want.Method, got.Method)
			assert.Equal(t, tt.want.Host, got.Host)
			assert.Equal(t, tt.want.Error, got.Error)
			assert.Equal(t, tt.want.Status, resp.StatusCode)
		})
	}
}

func TestNewWithoutWriters(t *testing.T) {
	app := newTestApp(adapter.Config{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Performance"))
}
