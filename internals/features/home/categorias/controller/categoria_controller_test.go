package controller_test

import (
	"testing"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/categorias/model"
	"painel_backend/internals/features/home/categorias/route"
	"painel_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriaLifecycle(t *testing.T) {
	db := testutil.OpenDB(t, &model.CategoriaModel{})
	app, admin := testutil.AdminApp(db)
	route.CategoriaAdminRoutes(admin, db, cache.NewRevalidator())
	route.CategoriaPublicRoutes(app.Group("/api/public"), db)

	sec := testutil.CreateUser(t, db, "sec@painel.test", constants.RoleSecretaria, constants.StatusActive)
	cookie := testutil.AccessCookie(t, sec)

	t.Run("missing nome is 400 and nothing is stored", func(t *testing.T) {
		r := testutil.Do(t, app, "POST", "/api/a/categorias", map[string]any{"cor": "#ff0000"}, cookie)
		assert.Equal(t, fiber.StatusBadRequest, r.Status)
		var n int64
		db.Model(&model.CategoriaModel{}).Count(&n)
		assert.Zero(t, n)
	})

	t.Run("bad color is 400", func(t *testing.T) {
		r := testutil.Do(t, app, "POST", "/api/a/categorias", map[string]any{"nome": "Eventos", "cor": "vermelho"}, cookie)
		assert.Equal(t, fiber.StatusBadRequest, r.Status)
	})

	r := testutil.Do(t, app, "POST", "/api/a/categorias", map[string]any{
		"nome": "Eventos", "icone": "calendar", "cor": "#FF8800",
	}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status, r.Body)
	id := r.Data()["id"].(string)
	assert.Equal(t, "#ff8800", r.Data()["cor"])

	r = testutil.Do(t, app, "POST", "/api/a/categorias", map[string]any{"nome": "Eventos"}, cookie)
	assert.Equal(t, fiber.StatusConflict, r.Status)

	r = testutil.Do(t, app, "PATCH", "/api/a/categorias?id="+id, map[string]any{"nome": "Agenda"}, cookie)
	require.Equal(t, fiber.StatusOK, r.Status)

	r = testutil.Do(t, app, "GET", "/api/a/categorias?id="+id, nil, cookie)
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.Equal(t, "Agenda", r.Data()["nome"])
	assert.Nil(t, r.Data()["icone"], "full replace clears fields that were not sent")
	assert.Nil(t, r.Data()["cor"])

	r = testutil.Do(t, app, "GET", "/api/public/categorias", nil, "")
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.Len(t, r.DataList(), 1)

	r = testutil.Do(t, app, "DELETE", "/api/a/categorias?id="+id, nil, cookie)
	require.Equal(t, fiber.StatusOK, r.Status)

	r = testutil.Do(t, app, "GET", "/api/a/categorias?id="+id, nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, r.Status)

	r = testutil.Do(t, app, "DELETE", "/api/a/categorias?id="+uuid.NewString(), nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, r.Status)
}

func TestCategoriaRoles(t *testing.T) {
	db := testutil.OpenDB(t, &model.CategoriaModel{})
	app, admin := testutil.AdminApp(db)
	route.CategoriaAdminRoutes(admin, db, nil)

	aluno := testutil.CreateUser(t, db, "aluno@painel.test", constants.RoleAluno, constants.StatusActive)
	r := testutil.Do(t, app, "POST", "/api/a/categorias", map[string]any{"nome": "X"}, testutil.AccessCookie(t, aluno))
	assert.Equal(t, fiber.StatusForbidden, r.Status)

	r = testutil.Do(t, app, "POST", "/api/a/categorias", map[string]any{"nome": "X"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, r.Status)
}
