package controller_test

import (
	"testing"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/polos/model"
	"painel_backend/internals/features/academic/polos/route"
	"painel_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPoloApp(t *testing.T) (*fiber.App, string, *gorm.DB) {
	db := testutil.OpenDB(t, &model.PoloModel{})
	app, admin := testutil.AdminApp(db)
	rv := cache.NewRevalidator()
	route.PoloAdminRoutes(admin, db, rv)
	route.PoloPublicRoutes(app.Group("/api/public"), db)
	u := testutil.CreateUser(t, db, "admin@painel.test", constants.RoleAdmin, constants.StatusActive)
	return app, testutil.AccessCookie(t, u), db
}

func TestPoloSlugDerivation(t *testing.T) {
	app, cookie, _ := newPoloApp(t)

	r := testutil.Do(t, app, "POST", "/api/a/polos", map[string]any{"name": "São José dos Campos", "state": "sp"}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status, r.Body)
	first := r.Data()
	assert.Equal(t, "sao-jose-dos-campos", first["slug"])
	assert.Equal(t, "SP", first["state"])

	r = testutil.Do(t, app, "POST", "/api/a/polos", map[string]any{"name": "São José dos Campos"}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status)
	assert.Equal(t, "sao-jose-dos-campos-2", r.Data()["slug"])

	// first row is untouched
	r = testutil.Do(t, app, "GET", "/api/a/polos?id="+first["id"].(string), nil, cookie)
	assert.Equal(t, "sao-jose-dos-campos", r.Data()["slug"])

	r = testutil.Do(t, app, "POST", "/api/a/polos", map[string]any{"name": "Outro", "slug": "SAO-JOSE-DOS-CAMPOS"}, cookie)
	assert.Equal(t, fiber.StatusConflict, r.Status)

	r = testutil.Do(t, app, "POST", "/api/a/polos", map[string]any{"name": "!!!"}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status)
	assert.Regexp(t, `^polo-[0-9a-f]{8}$`, r.Data()["slug"])
}

func TestPoloUpdateIsFullReplace(t *testing.T) {
	app, cookie, _ := newPoloApp(t)

	r := testutil.Do(t, app, "POST", "/api/a/polos", map[string]any{
		"name": "Polo Centro", "city": "Campinas", "phone": "1999999999", "email": "centro@painel.test",
	}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status)
	id := r.Data()["id"].(string)

	r = testutil.Do(t, app, "PATCH", "/api/a/polos?id="+id, map[string]any{"name": "Polo Centro Novo", "city": "Campinas"}, cookie)
	require.Equal(t, fiber.StatusOK, r.Status, r.Body)

	r = testutil.Do(t, app, "GET", "/api/a/polos?id="+id, nil, cookie)
	got := r.Data()
	assert.Equal(t, "Polo Centro Novo", got["name"])
	assert.Equal(t, "Campinas", got["city"])
	assert.Nil(t, got["phone"])
	assert.Nil(t, got["email"])
	assert.Equal(t, "polo-centro", got["slug"], "slug kept when not sent")

	r = testutil.Do(t, app, "PATCH", "/api/a/polos?id="+uuid.NewString(), map[string]any{"name": "X1"}, cookie)
	assert.Equal(t, fiber.StatusNotFound, r.Status)

	r = testutil.Do(t, app, "PATCH", "/api/a/polos?id="+id, map[string]any{"name": "P", "state": "SPX"}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, r.Status)
}

func TestPoloPublicLookupBySlug(t *testing.T) {
	app, cookie, _ := newPoloApp(t)

	r := testutil.Do(t, app, "POST", "/api/a/polos", map[string]any{"name": "Polo Norte"}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status)

	r = testutil.Do(t, app, "GET", "/api/public/polos?slug=polo-norte", nil, "")
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.Equal(t, "Polo Norte", r.Data()["name"])

	r = testutil.Do(t, app, "GET", "/api/public/polos?slug=nao-existe", nil, "")
	assert.Equal(t, fiber.StatusNotFound, r.Status)
}

func TestPoloCreateValidation(t *testing.T) {
	app, cookie, db := newPoloApp(t)

	for name, body := range map[string]map[string]any{
		"missing name": {"city": "Campinas"},
		"short name":   {"name": "P"},
		"bad state":    {"name": "Polo Sul", "state": "SPX"},
		"bad email":    {"name": "Polo Sul", "email": "nao-e-email"},
		"bad maps url": {"name": "Polo Sul", "maps_url": "mapa"},
	} {
		r := testutil.Do(t, app, "POST", "/api/a/polos", body, cookie)
		assert.Equal(t, fiber.StatusBadRequest, r.Status, name)
		assert.NotEmpty(t, r.Body["issues"], name)
	}
	var n int64
	require.NoError(t, db.Model(&model.PoloModel{}).Count(&n).Error)
	assert.Zero(t, n)
}
