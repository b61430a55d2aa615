package dto

import (
	"time"

	"github.com/google/uuid"
)

type OuvidoriaStats struct {
	Total     int64            `json:"total"`
	PorStatus map[string]int64 `json:"por_status"`
}

type TopTrabalho struct {
	ID         uuid.UUID `json:"id"`
	Titulo     string    `json:"titulo"`
	Slug       string    `json:"slug"`
	Visitantes int64     `json:"visitantes"`
}

// DashboardSummary is the admin home payload.
type DashboardSummary struct {
	Ouvidoria         OuvidoriaStats `json:"ouvidoria"`
	PostsPublicados   int64          `json:"posts_publicados"`
	CursosAtivos      int64          `json:"cursos_ativos"`
	TrabalhosRecentes int64          `json:"trabalhos_recentes"`
	TotalVisitantes   int64          `json:"total_visitantes"`
	TopTrabalhos      []TopTrabalho  `json:"top_trabalhos"`
	GeradoEm          time.Time      `json:"gerado_em"`
}
