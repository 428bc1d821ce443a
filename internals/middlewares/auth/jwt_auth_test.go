package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

const testSecret = "rahasia-test"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newAuthApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api/a",
		AuthJWT(AuthJWTOpts{Secret: testSecret}),
		OnlyRolesSlice(constants.RoleErrorAdmin("jadwal"), constants.AdminAndAbove),
	)
	api.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user": helperAuth.GetUserID(c), "role": helperAuth.GetRole(c)})
	})
	return app
}

func TestAuthJWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing token", "", fiber.StatusUnauthorized},
		{"garbage token", "Bearer abc.def", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("lain"),
			jwt.MapClaims{"sub": "u1", "roles_global": []string{"admin"}, "exp": exp}), fiber.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
			jwt.MapClaims{"sub": "u1", "roles_global": []string{"admin"}, "exp": time.Now().Add(-time.Hour).Unix()}), fiber.StatusUnauthorized},
		{"teacher forbidden", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
			jwt.MapClaims{"sub": "u1", "roles_global": []string{"teacher"}, "exp": exp}), fiber.StatusForbidden},
		{"admin allowed", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
			jwt.MapClaims{"sub": "u1", "roles_global": []string{"user", "admin"}, "exp": exp}), fiber.StatusOK},
		{"legacy role claim", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
			jwt.MapClaims{"id": "u2", "role": "owner", "exp": exp}), fiber.StatusOK},
	}

	app := newAuthApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/a/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestPickRole(t *testing.T) {
	assert.Equal(t, "admin", helperAuth.PickRole([]string{"teacher", "Admin"}))
	assert.Equal(t, "user", helperAuth.PickRole(nil))
}
