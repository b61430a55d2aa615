package controller_test

import (
	"testing"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/ouvidoria/controller"
	"painel_backend/internals/features/home/ouvidoria/model"
	"painel_backend/internals/features/home/ouvidoria/route"
	"painel_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type ouvidoriaEnv struct {
	app   *fiber.App
	db    *gorm.DB
	admin string
	sec   string
	aluno string
}

func newOuvidoriaEnv(t *testing.T) ouvidoriaEnv {
	db := testutil.OpenDB(t, &model.OuvidoriaModel{})
	app, admin := testutil.AdminApp(db)
	rv := cache.NewRevalidator()
	route.OuvidoriaAdminRoutes(admin, db, rv)
	route.OuvidoriaPublicRoutes(app.Group("/api/public"), db, rv)

	return ouvidoriaEnv{
		app:   app,
		db:    db,
		admin: testutil.AccessCookie(t, testutil.CreateUser(t, db, "admin@painel.test", constants.RoleAdmin, constants.StatusActive)),
		sec:   testutil.AccessCookie(t, testutil.CreateUser(t, db, "sec@painel.test", constants.RoleSecretaria, constants.StatusActive)),
		aluno: testutil.AccessCookie(t, testutil.CreateUser(t, db, "aluno@painel.test", constants.RoleAluno, constants.StatusActive)),
	}
}

func submission() map[string]any {
	return map[string]any{
		"tipo":     "Reclamacao",
		"nome":     "Maria Souza",
		"email":    "Maria@Exemplo.com",
		"assunto":  "Atraso no certificado",
		"mensagem": "O certificado ainda não foi emitido após 60 dias.",
	}
}

func TestNewProtocoloFormat(t *testing.T) {
	a, b := controller.NewProtocolo(), controller.NewProtocolo()
	assert.Regexp(t, `^OUV-\d{8}-[0-9A-F]{6}$`, a)
	assert.NotEqual(t, a, b)
}

func TestOuvidoriaPublicSubmitAndLookup(t *testing.T) {
	env := newOuvidoriaEnv(t)

	r := testutil.Do(t, env.app, "POST", "/api/public/ouvidoria", submission(), "")
	require.Equal(t, fiber.StatusCreated, r.Status, r.Body)
	prot := r.Data()["protocolo"].(string)
	assert.Equal(t, model.StatusEnviado, r.Data()["status"])

	var row model.OuvidoriaModel
	require.NoError(t, env.db.First(&row, "ouvidoria_protocolo = ?", prot).Error)
	assert.Equal(t, "maria@exemplo.com", row.OuvidoriaEmail)
	require.NotNil(t, row.OuvidoriaTipo)
	assert.Equal(t, "reclamacao", *row.OuvidoriaTipo)

	r = testutil.Do(t, env.app, "GET", "/api/public/ouvidoria?protocolo="+prot, nil, "")
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.Equal(t, "Atraso no certificado", r.Data()["assunto"])
	assert.NotContains(t, r.Data(), "email", "requester lookup does not echo personal data")

	r = testutil.Do(t, env.app, "GET", "/api/public/ouvidoria?protocolo=OUV-00000000-AAAAAA", nil, "")
	assert.Equal(t, fiber.StatusNotFound, r.Status)

	r = testutil.Do(t, env.app, "GET", "/api/public/ouvidoria", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, r.Status)
}

func TestOuvidoriaPublicValidation(t *testing.T) {
	env := newOuvidoriaEnv(t)

	body := submission()
	body["mensagem"] = "curta"
	body["tipo"] = "spam"
	r := testutil.Do(t, env.app, "POST", "/api/public/ouvidoria", body, "")
	require.Equal(t, fiber.StatusBadRequest, r.Status)

	fields := map[string]bool{}
	for _, it := range r.Body["issues"].([]any) {
		fields[it.(map[string]any)["field"].(string)] = true
	}
	assert.True(t, fields["mensagem"])
	assert.True(t, fields["tipo"])

	missing := submission()
	delete(missing, "email")
	r = testutil.Do(t, env.app, "POST", "/api/public/ouvidoria", missing, "")
	assert.Equal(t, fiber.StatusBadRequest, r.Status)

	staff := submission()
	staff["status"] = model.StatusEnviado
	delete(staff, "assunto")
	r = testutil.Do(t, env.app, "POST", "/api/a/ouvidoria", staff, env.admin)
	assert.Equal(t, fiber.StatusBadRequest, r.Status)

	var n int64
	require.NoError(t, env.db.Model(&model.OuvidoriaModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestOuvidoriaStaffWorkflow(t *testing.T) {
	env := newOuvidoriaEnv(t)

	r := testutil.Do(t, env.app, "POST", "/api/public/ouvidoria", submission(), "")
	require.Equal(t, fiber.StatusCreated, r.Status)
	prot := r.Data()["protocolo"].(string)

	r = testutil.Do(t, env.app, "GET", "/api/a/ouvidoria?protocolo="+prot, nil, env.sec)
	require.Equal(t, fiber.StatusOK, r.Status)
	id := r.Data()["id"].(string)
	assert.Nil(t, r.Data()["respondido_em"])

	update := submission()
	update["status"] = model.StatusEmAtendimento
	update["resposta"] = "Estamos verificando com a secretaria."
	r = testutil.Do(t, env.app, "PATCH", "/api/a/ouvidoria?id="+id, update, env.sec)
	require.Equal(t, fiber.StatusOK, r.Status, r.Body)
	assert.Equal(t, model.StatusEmAtendimento, r.Data()["status"])
	assert.NotNil(t, r.Data()["respondido_em"])

	// any status may follow any other
	update["status"] = model.StatusEnviado
	delete(update, "resposta")
	r = testutil.Do(t, env.app, "PATCH", "/api/a/ouvidoria?id="+id, update, env.admin)
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.Equal(t, model.StatusEnviado, r.Data()["status"])
	assert.Nil(t, r.Data()["resposta"])
	assert.Nil(t, r.Data()["respondido_em"])

	update["status"] = "Arquivado"
	r = testutil.Do(t, env.app, "PATCH", "/api/a/ouvidoria?id="+id, update, env.admin)
	assert.Equal(t, fiber.StatusBadRequest, r.Status)

	r = testutil.Do(t, env.app, "GET", "/api/a/ouvidoria?status=Enviado&q=certificado", nil, env.admin)
	require.Equal(t, fiber.StatusOK, r.Status)
	assert.Len(t, r.DataList(), 1)

	r = testutil.Do(t, env.app, "GET", "/api/a/ouvidoria?status=Finalizado", nil, env.admin)
	assert.Len(t, r.DataList(), 0)

	r = testutil.Do(t, env.app, "DELETE", "/api/a/ouvidoria?id="+id, nil, env.admin)
	require.Equal(t, fiber.StatusOK, r.Status)
	r = testutil.Do(t, env.app, "DELETE", "/api/a/ouvidoria?id="+id, nil, env.admin)
	assert.Equal(t, fiber.StatusNotFound, r.Status)
	update["status"] = model.StatusFinalizado
	r = testutil.Do(t, env.app, "PATCH", "/api/a/ouvidoria?id="+uuid.NewString(), update, env.admin)
	assert.Equal(t, fiber.StatusNotFound, r.Status)
}

func TestOuvidoriaStaffCreateAndRoles(t *testing.T) {
	env := newOuvidoriaEnv(t)

	body := submission()
	body["status"] = model.StatusFinalizado
	body["resposta"] = "Resolvido por telefone."
	r := testutil.Do(t, env.app, "POST", "/api/a/ouvidoria", body, env.admin)
	require.Equal(t, fiber.StatusCreated, r.Status, r.Body)
	assert.Regexp(t, `^OUV-`, r.Data()["protocolo"])
	assert.NotNil(t, r.Data()["respondido_em"])

	r = testutil.Do(t, env.app, "GET", "/api/a/ouvidoria", nil, env.aluno)
	assert.Equal(t, fiber.StatusForbidden, r.Status)
	r = testutil.Do(t, env.app, "GET", "/api/a/ouvidoria", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, r.Status)
	r = testutil.Do(t, env.app, "GET", "/api/a/ouvidoria?id=nope", nil, env.admin)
	assert.Equal(t, fiber.StatusBadRequest, r.Status)
}
