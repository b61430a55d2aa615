package service

import (
	"context"
	"time"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	cursoModel "painel_backend/internals/features/academic/cursos/model"
	trabalhoModel "painel_backend/internals/features/academic/trabalhos/model"
	"painel_backend/internals/features/dashboard/dto"
	ouvidoriaModel "painel_backend/internals/features/home/ouvidoria/model"
	postModel "painel_backend/internals/features/home/posts/model"
	"painel_backend/internals/helpers/dbtime"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	SummaryKey   = "dashboard:summary"
	RecentMonths = 6
	TopLimit     = 5
)

type DashboardService struct {
	DB   *gorm.DB
	Tags *cache.TagStore
	Now  func() time.Time
}

func NewDashboardService(db *gorm.DB, tags *cache.TagStore) *DashboardService {
	return &DashboardService{DB: db, Tags: tags, Now: dbtime.NowUTC}
}

// Summary is memoized under the dashboard tag until it is revalidated.
func (s *DashboardService) Summary(ctx context.Context) (dto.DashboardSummary, error) {
	return cache.Remember(s.Tags, SummaryKey, []string{constants.TagDashboard}, func() (dto.DashboardSummary, error) {
		return s.compute(ctx)
	})
}

func (s *DashboardService) compute(ctx context.Context) (dto.DashboardSummary, error) {
	now := s.Now()
	out := dto.DashboardSummary{
		Ouvidoria: dto.OuvidoriaStats{PorStatus: map[string]int64{}},
		GeradoEm:  now,
	}
	for _, st := range ouvidoriaModel.Statuses {
		out.Ouvidoria.PorStatus[st] = 0
	}

	g, gctx := errgroup.WithContext(ctx)
	db := s.DB.WithContext(gctx)

	g.Go(func() error {
		var rows []struct {
			Status string
			Total  int64
		}
		if err := db.Model(&ouvidoriaModel.OuvidoriaModel{}).
			Select("ouvidoria_status AS status, COUNT(*) AS total").
			Group("ouvidoria_status").
			Scan(&rows).Error; err != nil {
			return err
		}
		// each goroutine owns its own fields of out
		for _, r := range rows {
			out.Ouvidoria.PorStatus[r.Status] = r.Total
			out.Ouvidoria.Total += r.Total
		}
		return nil
	})
	g.Go(func() error {
		return db.Model(&postModel.PostModel{}).
			Where("post_published = ?", true).
			Count(&out.PostsPublicados).Error
	})
	g.Go(func() error {
		return db.Model(&cursoModel.CursoModel{}).
			Where("curso_active = ?", true).
			Count(&out.CursosAtivos).Error
	})
	g.Go(func() error {
		return db.Model(&trabalhoModel.TrabalhoModel{}).
			Where("trabalho_created_at >= ?", dbtime.MonthsAgo(now, RecentMonths)).
			Count(&out.TrabalhosRecentes).Error
	})
	g.Go(func() error {
		return db.Model(&trabalhoModel.TrabalhoModel{}).
			Select("COALESCE(SUM(trabalho_visitantes), 0)").
			Scan(&out.TotalVisitantes).Error
	})
	g.Go(func() error {
		var rows []trabalhoModel.TrabalhoModel
		if err := db.Select("trabalho_id", "trabalho_titulo", "trabalho_slug", "trabalho_visitantes").
			Order("trabalho_visitantes DESC").
			Order("trabalho_created_at DESC").
			Limit(TopLimit).
			Find(&rows).Error; err != nil {
			return err
		}
		out.TopTrabalhos = make([]dto.TopTrabalho, 0, len(rows))
		for _, r := range rows {
			out.TopTrabalhos = append(out.TopTrabalhos, dto.TopTrabalho{
				ID:         r.TrabalhoID,
				Titulo:     r.TrabalhoTitulo,
				Slug:       r.TrabalhoSlug,
				Visitantes: r.TrabalhoVisitantes,
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dto.DashboardSummary{}, err
	}
	return out, nil
}
