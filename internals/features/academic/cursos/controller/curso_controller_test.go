package controller_test

import (
	"testing"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/cursos/model"
	"painel_backend/internals/features/academic/cursos/route"
	"painel_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCursoApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	db := testutil.OpenDB(t, &model.CursoModel{})
	app, admin := testutil.AdminApp(db)
	route.CursoAdminRoutes(admin, db, cache.NewRevalidator())
	route.CursoPublicRoutes(app.Group("/api/public"), db)
	u := testutil.CreateUser(t, db, "admin@painel.test", constants.RoleAdmin, constants.StatusActive)
	return app, db, testutil.AccessCookie(t, u)
}

// POST → GET → DELETE → GET 404
func TestCursoEndToEnd(t *testing.T) {
	app, _, cookie := newCursoApp(t)

	r := testutil.Do(t, app, "POST", "/api/a/cursos", map[string]any{"title": "Intro", "slug": "intro"}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status, r.Body)
	assert.Equal(t, true, r.Body["success"])
	id, _ := r.Data()["id"].(string)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	r = testutil.Do(t, app, "GET", "/api/a/cursos?id="+id, nil, cookie)
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.Equal(t, id, r.Data()["id"])
	assert.Equal(t, "Intro", r.Data()["title"])
	assert.Equal(t, "intro", r.Data()["slug"])

	r = testutil.Do(t, app, "DELETE", "/api/a/cursos?id="+id, nil, cookie)
	require.Equal(t, fiber.StatusOK, r.Status)

	r = testutil.Do(t, app, "GET", "/api/a/cursos?id="+id, nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, r.Status)
	assert.Equal(t, false, r.Body["success"])
}

func TestCursoCreateValidation(t *testing.T) {
	app, db, cookie := newCursoApp(t)

	for name, body := range map[string]map[string]any{
		"missing title":  {"slug": "x"},
		"short title":    {"title": "ab"},
		"bad modality":   {"title": "Direito", "modality": "remoto"},
		"negative hours": {"title": "Direito", "duration_hours": -1},
	} {
		r := testutil.Do(t, app, "POST", "/api/a/cursos", body, cookie)
		assert.Equal(t, fiber.StatusBadRequest, r.Status, name)
		assert.NotEmpty(t, r.Body["issues"], name)
	}
	var n int64
	db.Model(&model.CursoModel{}).Count(&n)
	assert.Zero(t, n)
}

func TestCursoUpdateFullReplace(t *testing.T) {
	app, _, cookie := newCursoApp(t)

	r := testutil.Do(t, app, "POST", "/api/a/cursos", map[string]any{
		"title": "Administração", "modality": "EAD", "duration_hours": 3200, "active": true,
		"description": "Bacharelado",
	}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status, r.Body)
	id := r.Data()["id"].(string)
	assert.Equal(t, "administracao", r.Data()["slug"])
	assert.Equal(t, "ead", r.Data()["modality"])

	r = testutil.Do(t, app, "PATCH", "/api/a/cursos?id="+id, map[string]any{
		"title": "Administração Pública", "slug": "adm-publica", "active": true,
	}, cookie)
	require.Equal(t, fiber.StatusOK, r.Status, r.Body)

	r = testutil.Do(t, app, "GET", "/api/a/cursos?id="+id, nil, cookie)
	got := r.Data()
	assert.Equal(t, "Administração Pública", got["title"])
	assert.Equal(t, "adm-publica", got["slug"])
	assert.Equal(t, true, got["active"])
	assert.Nil(t, got["modality"])
	assert.Nil(t, got["duration_hours"])
	assert.Nil(t, got["description"])
}

func TestCursoPublicListShowsOnlyActive(t *testing.T) {
	app, _, cookie := newCursoApp(t)

	for _, b := range []map[string]any{
		{"title": "Pedagogia", "active": true},
		{"title": "Letras", "active": false},
	} {
		r := testutil.Do(t, app, "POST", "/api/a/cursos", b, cookie)
		require.Equal(t, fiber.StatusCreated, r.Status)
	}

	r := testutil.Do(t, app, "GET", "/api/public/cursos", nil, "")
	require.Equal(t, fiber.StatusOK, r.Status)
	require.Len(t, r.DataList(), 1)
	assert.Equal(t, "Pedagogia", r.DataList()[0].(map[string]any)["title"])

	r = testutil.Do(t, app, "GET", "/api/public/cursos?slug=letras", nil, "")
	assert.Equal(t, fiber.StatusNotFound, r.Status)

	r = testutil.Do(t, app, "GET", "/api/a/cursos?active=false", nil, cookie)
	require.Len(t, r.DataList(), 1)
}
