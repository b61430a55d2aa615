package controller_test

import (
	"testing"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/settings/model"
	"painel_backend/internals/features/home/settings/route"
	"painel_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSettingApp(t *testing.T) (*fiber.App, *gorm.DB, string, string) {
	db := testutil.OpenDB(t, &model.SettingModel{})
	app, admin := testutil.AdminApp(db)
	rv := cache.NewRevalidator()
	route.SettingAdminRoutes(admin, db, rv)
	route.SettingPublicRoutes(app.Group("/api/public"), db)
	a := testutil.CreateUser(t, db, "admin@painel.test", constants.RoleAdmin, constants.StatusActive)
	s := testutil.CreateUser(t, db, "sec@painel.test", constants.RoleSecretaria, constants.StatusActive)
	return app, db, testutil.AccessCookie(t, a), testutil.AccessCookie(t, s)
}

func TestSettingsEmptyBeforeFirstWrite(t *testing.T) {
	app, _, admin, _ := newSettingApp(t)

	r := testutil.Do(t, app, "GET", "/api/a/settings", nil, admin)
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.Empty(t, r.Data()["values"])
}

func TestSettingsKeyValueLifecycle(t *testing.T) {
	app, db, admin, _ := newSettingApp(t)

	r := testutil.Do(t, app, "PATCH", "/api/a/settings", map[string]any{"key": "site_title", "value": "Faculdade"}, admin)
	require.Equal(t, fiber.StatusOK, r.Status, r.Body)

	r = testutil.Do(t, app, "PATCH", "/api/a/settings", map[string]any{
		"key": "contato", "value": map[string]any{"telefone": "11 4000-0000"},
	}, admin)
	require.Equal(t, fiber.StatusOK, r.Status)
	values := r.Data()["values"].(map[string]any)
	assert.Equal(t, "Faculdade", values["site_title"], "other keys survive a write")
	assert.Equal(t, "11 4000-0000", values["contato"].(map[string]any)["telefone"])

	var count int64
	require.NoError(t, db.Model(&model.SettingModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	r = testutil.Do(t, app, "GET", "/api/public/settings?key=site_title", nil, "")
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.Equal(t, "Faculdade", r.Data()["value"])

	r = testutil.Do(t, app, "DELETE", "/api/a/settings?key=site_title", nil, admin)
	require.Equal(t, fiber.StatusOK, r.Status)
	r = testutil.Do(t, app, "DELETE", "/api/a/settings?key=site_title", nil, admin)
	assert.Equal(t, fiber.StatusNotFound, r.Status)
	r = testutil.Do(t, app, "GET", "/api/public/settings?key=site_title", nil, "")
	assert.Equal(t, fiber.StatusNotFound, r.Status)
}

func TestSettingsValidationAndRoles(t *testing.T) {
	app, _, admin, sec := newSettingApp(t)

	r := testutil.Do(t, app, "PATCH", "/api/a/settings", map[string]any{"key": "  ", "value": 1}, admin)
	assert.Equal(t, fiber.StatusBadRequest, r.Status)

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'k'
	}
	r = testutil.Do(t, app, "PATCH", "/api/a/settings", map[string]any{"key": string(long), "value": 1}, admin)
	assert.Equal(t, fiber.StatusBadRequest, r.Status)

	r = testutil.Do(t, app, "PATCH", "/api/a/settings", map[string]any{"key": "x", "value": 1}, sec)
	assert.Equal(t, fiber.StatusForbidden, r.Status)
}
