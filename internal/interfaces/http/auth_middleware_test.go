package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/stokly/insights-api/internal/interfaces/http"
	pkgjwt "github.com/stokly/insights-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "stokly-insights-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler dummy que refleja los locals cargados por el middleware.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id":    apphttp.GetUserID(c),
				"company_id": apphttp.GetCompanyID(c),
			})
		},
	)
	return app
}

// validToken genera un JWT firmado con el secreto de test.
func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido: pasa el middleware y los locals quedan cargados.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, validToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, testUserID, out["user_id"])
	assert.Equal(t, testCompanyID, out["company_id"])
}

// Sin header Authorization: 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Header sin el prefijo Bearer: 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secreto: 401.
func TestAuthMiddleware_SecretoIncorrecto(t *testing.T) {
	app := buildTestApp()

	tok, err := pkgjwt.Generate("otro-secreto", testUserID, testCompanyID, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token expirado: 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp()

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, testIssuer, -5)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Bearer sin token: 401.
func TestAuthMiddleware_TokenVacio(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "Bearer ")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
