package service_test

import (
	"context"
	"testing"
	"time"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	cursoModel "painel_backend/internals/features/academic/cursos/model"
	trabalhoModel "painel_backend/internals/features/academic/trabalhos/model"
	"painel_backend/internals/features/dashboard/service"
	ouvidoriaModel "painel_backend/internals/features/home/ouvidoria/model"
	postModel "painel_backend/internals/features/home/posts/model"
	"painel_backend/internals/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func openDashboardDB(t *testing.T) *gorm.DB {
	return testutil.OpenDB(t,
		&ouvidoriaModel.OuvidoriaModel{},
		&postModel.PostModel{},
		&cursoModel.CursoModel{},
		&trabalhoModel.TrabalhoModel{},
	)
}

func seedDashboard(t *testing.T, db *gorm.DB) {
	for i, st := range []string{ouvidoriaModel.StatusEnviado, ouvidoriaModel.StatusEnviado, ouvidoriaModel.StatusFinalizado} {
		require.NoError(t, db.Create(&ouvidoriaModel.OuvidoriaModel{
			OuvidoriaProtocolo: "OUV-20261018-00000" + string(rune('0'+i)),
			OuvidoriaStatus:    st,
			OuvidoriaNome:      "Fulano",
			OuvidoriaEmail:     "f@painel.test",
			OuvidoriaAssunto:   "Assunto",
			OuvidoriaMensagem:  "Mensagem longa o bastante",
		}).Error)
	}

	require.NoError(t, db.Create(&postModel.PostModel{PostSlug: "a", PostTitle: "A", PostContent: "x", PostPublished: true}).Error)
	require.NoError(t, db.Create(&postModel.PostModel{PostSlug: "b", PostTitle: "B", PostContent: "x"}).Error)

	require.NoError(t, db.Create(&cursoModel.CursoModel{CursoTitle: "Intro", CursoSlug: "intro", CursoActive: true}).Error)
	require.NoError(t, db.Create(&cursoModel.CursoModel{CursoTitle: "Velho", CursoSlug: "velho"}).Error)

	works := []trabalhoModel.TrabalhoModel{
		{TrabalhoTitulo: "Recente A", TrabalhoSlug: "recente-a", TrabalhoVisitantes: 40, TrabalhoCreatedAt: fixedNow.AddDate(0, -1, 0)},
		{TrabalhoTitulo: "Recente B", TrabalhoSlug: "recente-b", TrabalhoVisitantes: 5, TrabalhoCreatedAt: fixedNow.AddDate(0, -5, 0)},
		{TrabalhoTitulo: "Antigo", TrabalhoSlug: "antigo", TrabalhoVisitantes: 100, TrabalhoCreatedAt: fixedNow.AddDate(-1, 0, 0)},
	}
	for i := range works {
		require.NoError(t, db.Create(&works[i]).Error)
	}
}

func newService(db *gorm.DB) (*service.DashboardService, *cache.TagStore) {
	tags := cache.NewTagStore()
	svc := service.NewDashboardService(db, tags)
	svc.Now = func() time.Time { return fixedNow }
	return svc, tags
}

func TestSummaryAggregates(t *testing.T) {
	db := openDashboardDB(t)
	seedDashboard(t, db)
	svc, _ := newService(db)

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 3, sum.Ouvidoria.Total)
	assert.EqualValues(t, 2, sum.Ouvidoria.PorStatus[ouvidoriaModel.StatusEnviado])
	assert.EqualValues(t, 0, sum.Ouvidoria.PorStatus[ouvidoriaModel.StatusEmAtendimento])
	assert.EqualValues(t, 1, sum.Ouvidoria.PorStatus[ouvidoriaModel.StatusFinalizado])
	assert.EqualValues(t, 1, sum.PostsPublicados)
	assert.EqualValues(t, 1, sum.CursosAtivos)
	assert.EqualValues(t, 2, sum.TrabalhosRecentes)
	assert.EqualValues(t, 145, sum.TotalVisitantes)
	require.Len(t, sum.TopTrabalhos, 3)
	assert.Equal(t, "antigo", sum.TopTrabalhos[0].Slug)
	assert.Equal(t, "recente-b", sum.TopTrabalhos[2].Slug)
}

func TestSummaryEmptyDatabase(t *testing.T) {
	svc, _ := newService(openDashboardDB(t))

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.TotalVisitantes)
	assert.NotNil(t, sum.TopTrabalhos)
	assert.Len(t, sum.Ouvidoria.PorStatus, len(ouvidoriaModel.Statuses))
}

func TestSummaryMemoizedUntilTagRevalidated(t *testing.T) {
	db := openDashboardDB(t)
	seedDashboard(t, db)
	svc, tags := newService(db)

	first, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.NoError(t, db.Create(&cursoModel.CursoModel{CursoTitle: "Novo", CursoSlug: "novo", CursoActive: true}).Error)

	cached, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.CursosAtivos, cached.CursosAtivos, "stale until revalidated")

	require.NoError(t, tags.RevalidateTag(constants.TagDashboard))
	fresh, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, fresh.CursosAtivos)
}

func TestSummaryErrorIsNotCached(t *testing.T) {
	db := openDashboardDB(t)
	svc, tags := newService(db)

	require.NoError(t, db.Migrator().DropTable(&trabalhoModel.TrabalhoModel{}))
	_, err := svc.Summary(context.Background())
	require.Error(t, err)
	assert.Zero(t, tags.Len())

	require.NoError(t, db.AutoMigrate(&trabalhoModel.TrabalhoModel{}))
	_, err = svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, tags.Len())
}
