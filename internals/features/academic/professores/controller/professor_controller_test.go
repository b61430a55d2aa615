package controller_test

import (
	"testing"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/professores/model"
	"painel_backend/internals/features/academic/professores/route"
	helperOSS "painel_backend/internals/helpers/oss"
	"painel_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfessorCRUD(t *testing.T) {
	db := testutil.OpenDB(t, &model.ProfessorModel{})
	app, admin := testutil.AdminApp(db)
	route.ProfessorAdminRoutes(admin, db, cache.NewRevalidator(), helperOSS.NewLocalBlobService(t.TempDir(), "/uploads"))
	route.ProfessorPublicRoutes(app.Group("/api/public"), db)
	u := testutil.CreateUser(t, db, "admin@painel.test", constants.RoleAdmin, constants.StatusActive)
	cookie := testutil.AccessCookie(t, u)

	r := testutil.Do(t, app, "POST", "/api/a/professores", map[string]any{"titulacao": "Mestre"}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, r.Status)

	r = testutil.Do(t, app, "POST", "/api/a/professores", map[string]any{"nome": "Ana Lima", "titulacao": "Pós-doc"}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, r.Status)

	var n int64
	require.NoError(t, db.Model(&model.ProfessorModel{}).Count(&n).Error)
	assert.Zero(t, n)

	r = testutil.Do(t, app, "POST", "/api/a/professores", map[string]any{
		"nome": "Ana Lima", "titulacao": "Doutor", "email": "ANA@painel.test", "link": "https://lattes.cnpq.br/123",
	}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status, r.Body)
	id := r.Data()["id"].(string)
	assert.Equal(t, "ana@painel.test", r.Data()["email"])

	r = testutil.Do(t, app, "GET", "/api/public/professores?titulacao=Doutor", nil, "")
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.Len(t, r.DataList(), 1)

	r = testutil.Do(t, app, "PATCH", "/api/a/professores?id="+id, map[string]any{"nome": "Ana Lima Souza"}, cookie)
	require.Equal(t, fiber.StatusOK, r.Status)
	r = testutil.Do(t, app, "GET", "/api/a/professores?id="+id, nil, cookie)
	assert.Equal(t, "Ana Lima Souza", r.Data()["nome"])
	assert.Nil(t, r.Data()["titulacao"])
	assert.Nil(t, r.Data()["link"])

	r = testutil.Do(t, app, "GET", "/api/a/professores?id="+uuid.NewString(), nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, r.Status)

	r = testutil.Do(t, app, "DELETE", "/api/a/professores?id="+id, nil, cookie)
	require.Equal(t, fiber.StatusOK, r.Status)
	r = testutil.Do(t, app, "DELETE", "/api/a/professores?id="+id, nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, r.Status)
}
