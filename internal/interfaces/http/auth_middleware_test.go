package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgarCaloch00/CrepePosApi/internal/application/dto"
	"github.com/EdgarCaloch00/CrepePosApi/internal/domain/entity"
	apphttp "github.com/EdgarCaloch00/CrepePosApi/internal/interfaces/http"
	"github.com/EdgarCaloch00/CrepePosApi/pkg/jwt"
)

const testSecret = "secret-de-pruebas"

// newProtectedApp arma una ruta protegida que refleja los locals del token.
func newProtectedApp(roles ...string) *fiber.App {
	app := fiber.New()
	group := app.Group("/", apphttp.AuthMiddleware(testSecret))
	if len(roles) > 0 {
		group = group.Group("/", apphttp.RequireRole(roles...))
	}
	group.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"branch_id": apphttp.GetBranchID(c),
			"role":      apphttp.GetRole(c),
		})
	})
	return app
}

func mustToken(t *testing.T, userID, branchID, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, userID, branchID, role, "crepepos", 15)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, "u1", "b1", entity.RoleCajero))

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u1", body["user_id"])
	assert.Equal(t, "b1", body["branch_id"])
	assert.Equal(t, entity.RoleCajero, body["role"])
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Basic abc123")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := newProtectedApp()

	// Token firmado con otro secret
	token, err := jwt.Generate("otro-secret", "u1", "", entity.RoleAdmin, "crepepos", 15)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := newProtectedApp()

	// Expiración negativa: el token nace vencido
	token, err := jwt.Generate(testSecret, "u1", "", entity.RoleAdmin, "crepepos", -5)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_PorRol(t *testing.T) {
	cases := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"admin entra al dashboard", entity.RoleAdmin, fiber.StatusOK},
		{"gerente entra al dashboard", entity.RoleGerente, fiber.StatusOK},
		{"cajero no entra al dashboard", entity.RoleCajero, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newProtectedApp(entity.RoleAdmin, entity.RoleGerente)

			req := httptest.NewRequest("GET", "/me", nil)
			req.Header.Set("Authorization", "Bearer "+mustToken(t, "u1", "", tc.role))

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			if tc.wantStatus == fiber.StatusForbidden {
				var body dto.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, "FORBIDDEN", body.Code)
			}
		})
	}
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	app := newProtectedApp(entity.RoleAdmin)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, "u1", "", ""))

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MISSING_ROLE", body.Code)
}
