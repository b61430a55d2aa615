package controller_test

import (
	"testing"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	cursoModel "painel_backend/internals/features/academic/cursos/model"
	trabalhoModel "painel_backend/internals/features/academic/trabalhos/model"
	"painel_backend/internals/features/dashboard/route"
	ouvidoriaModel "painel_backend/internals/features/home/ouvidoria/model"
	postModel "painel_backend/internals/features/home/posts/model"
	"painel_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardEndpoint(t *testing.T) {
	db := testutil.OpenDB(t,
		&ouvidoriaModel.OuvidoriaModel{},
		&postModel.PostModel{},
		&cursoModel.CursoModel{},
		&trabalhoModel.TrabalhoModel{},
	)
	app, admin := testutil.AdminApp(db)
	route.DashboardRoutes(admin, db, cache.NewTagStore())

	sec := testutil.AccessCookie(t, testutil.CreateUser(t, db, "sec@painel.test", constants.RoleSecretaria, constants.StatusActive))
	prof := testutil.AccessCookie(t, testutil.CreateUser(t, db, "prof@painel.test", constants.RoleProfessor, constants.StatusActive))

	r := testutil.Do(t, app, "GET", "/api/a/dashboard", nil, sec)
	require.Equal(t, fiber.StatusOK, r.Status, r.Body)
	assert.Contains(t, r.Data(), "ouvidoria")
	assert.Contains(t, r.Data(), "top_trabalhos")

	r = testutil.Do(t, app, "GET", "/api/a/dashboard", nil, prof)
	assert.Equal(t, fiber.StatusForbidden, r.Status)
	r = testutil.Do(t, app, "GET", "/api/a/dashboard", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, r.Status)

	require.NoError(t, db.Migrator().DropTable(&postModel.PostModel{}))
	app2, admin2 := testutil.AdminApp(db)
	route.DashboardRoutes(admin2, db, cache.NewTagStore())
	r = testutil.Do(t, app2, "GET", "/api/a/dashboard", nil, sec)
	assert.Equal(t, fiber.StatusInternalServerError, r.Status)
	assert.Equal(t, false, r.Body["success"])
}
