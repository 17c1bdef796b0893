package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	app := setupApp(Config{ApiKey: "secret", Skip: []string{"/swagger"}})

	tests := []struct {
		name   string
		path   string
		header string
		value  string
		want   int
	}{
		{"NoKey", "/profiles", "", "", fiber.StatusUnauthorized},
		{"WrongKey", "/profiles", HeaderName, "nope", fiber.StatusUnauthorized},
		{"HeaderKey", "/profiles", HeaderName, "secret", fiber.StatusOK},
		{"BearerKey", "/profiles", fiber.HeaderAuthorization, "Bearer secret", fiber.StatusOK},
		{"WrongScheme", "/profiles", fiber.HeaderAuthorization, "Basic secret", fiber.StatusUnauthorized},
		{"Skipped", "/swagger/index.html", "", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	resp, err := setupApp(Config{}).Test(httptest.NewRequest("GET", "/profiles", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
