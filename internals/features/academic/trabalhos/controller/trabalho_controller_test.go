package controller_test

import (
	"net/http/httptest"
	"sync"
	"testing"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/trabalhos/model"
	"painel_backend/internals/features/academic/trabalhos/route"
	"painel_backend/internals/middlewares"
	"painel_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTrabalhoApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	db := testutil.OpenDB(t, &model.TrabalhoModel{})
	app, admin := testutil.AdminApp(db)
	rv := cache.NewRevalidator()
	route.TrabalhoAdminRoutes(admin, db, rv)
	route.TrabalhoPublicRoutes(app.Group("/api/public"), db, rv)
	u := testutil.CreateUser(t, db, "sec@painel.test", constants.RoleSecretaria, constants.StatusActive)
	return app, db, testutil.AccessCookie(t, u)
}

func TestTrabalhoCreateAndTags(t *testing.T) {
	app, db, cookie := newTrabalhoApp(t)

	r := testutil.Do(t, app, "POST", "/api/a/trabalhos", map[string]any{"autor": "Sem título"}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, r.Status)
	var n int64
	db.Model(&model.TrabalhoModel{}).Count(&n)
	assert.Zero(t, n)

	r = testutil.Do(t, app, "POST", "/api/a/trabalhos", map[string]any{
		"titulo": "Educação Inclusiva no Ensino Médio",
		"autor":  "João Pereira",
		"tags":   []string{" Educação ", "inclusão", "educação", ""},
	}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status, r.Body)
	got := r.Data()
	assert.Equal(t, "educacao-inclusiva-no-ensino-medio", got["slug"])
	assert.Equal(t, []any{"educação", "inclusão"}, got["tags"])
	assert.EqualValues(t, 0, got["visitantes"])

	r = testutil.Do(t, app, "POST", "/api/a/trabalhos", map[string]any{"titulo": "Educação Inclusiva no Ensino Médio"}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status)
	assert.Equal(t, "educacao-inclusiva-no-ensino-medio-2", r.Data()["slug"])
}

func TestTrabalhoVisitCounter(t *testing.T) {
	app, _, cookie := newTrabalhoApp(t)

	r := testutil.Do(t, app, "POST", "/api/a/trabalhos", map[string]any{"titulo": "Robótica Livre"}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status)
	id := r.Data()["id"].(string)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := app.Test(httptest.NewRequest("POST", "/api/public/trabalhos/visit?slug=robotica-livre", nil), -1)
			if assert.NoError(t, err) {
				assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			}
		}()
	}
	wg.Wait()

	r = testutil.Do(t, app, "POST", "/api/public/trabalhos/visit?slug=robotica-livre", nil, "")
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.EqualValues(t, 11, r.Data()["visitantes"])

	r = testutil.Do(t, app, "POST", "/api/public/trabalhos/visit?slug=nao-existe", nil, "")
	assert.Equal(t, fiber.StatusNotFound, r.Status)
	r = testutil.Do(t, app, "POST", "/api/public/trabalhos/visit", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, r.Status)

	// updates keep the counter
	r = testutil.Do(t, app, "PATCH", "/api/a/trabalhos?id="+id, map[string]any{"titulo": "Robótica Livre 2"}, cookie)
	require.Equal(t, fiber.StatusOK, r.Status, r.Body)
	r = testutil.Do(t, app, "GET", "/api/public/trabalhos?slug=robotica-livre", nil, "")
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.EqualValues(t, 11, r.Data()["visitantes"])
	assert.Equal(t, "Robótica Livre 2", r.Data()["titulo"])

	r = testutil.Do(t, app, "GET", "/api/a/trabalhos?sort_by=visitantes", nil, cookie)
	require.Len(t, r.DataList(), 1)
}

func TestVisitRefreshesCachedPublicList(t *testing.T) {
	db := testutil.OpenDB(t, &model.TrabalhoModel{})
	app, admin := testutil.AdminApp(db)
	rv := cache.NewRevalidator()
	route.TrabalhoAdminRoutes(admin, db, rv)
	route.TrabalhoPublicRoutes(app.Group("/api/public", middlewares.PageCache(rv.Pages)), db, rv)
	cookie := testutil.AccessCookie(t, testutil.CreateUser(t, db, "sec@painel.test", constants.RoleSecretaria, constants.StatusActive))

	r := testutil.Do(t, app, "POST", "/api/a/trabalhos", map[string]any{"titulo": "Horta Vertical"}, cookie)
	require.Equal(t, fiber.StatusCreated, r.Status, r.Body)

	visitantes := func() (any, string) {
		r := testutil.Do(t, app, "GET", "/api/public/trabalhos", nil, "")
		require.Equal(t, fiber.StatusOK, r.Status)
		require.Len(t, r.DataList(), 1)
		return r.DataList()[0].(map[string]any)["visitantes"], r.Header.Get("X-Cache")
	}

	v, xc := visitantes()
	assert.EqualValues(t, 0, v)
	assert.Equal(t, "miss", xc)
	_, xc = visitantes()
	assert.Equal(t, "hit", xc)

	r = testutil.Do(t, app, "POST", "/api/public/trabalhos/visit?slug=horta-vertical", nil, "")
	require.Equal(t, fiber.StatusOK, r.Status, r.Body)

	v, xc = visitantes()
	assert.EqualValues(t, 1, v)
	assert.Equal(t, "miss", xc)
}
