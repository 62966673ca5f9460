package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/storefront-admin/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func TestRegisterSwagger_SinArchivoNoDerribaLaAPI(t *testing.T) {
	app := fiber.New()

	// Un despliegue sin docs/ arranca igual: /docs queda deshabilitado.
	require.NotPanics(t, func() {
		registerSwagger(app, newTestLogger(), "./no-existe/swagger.json")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRegisterSwagger_ConArchivoMontaLaUI(t *testing.T) {
	app := fiber.New()

	require.NotPanics(t, func() {
		registerSwagger(app, newTestLogger(), "../../docs/swagger.json")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
