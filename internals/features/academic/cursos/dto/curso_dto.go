package dto

import (
	"strings"
	"time"

	"painel_backend/internals/features/academic/cursos/model"
	helper "painel_backend/internals/helpers"

	"github.com/google/uuid"
)

type CursoDTO struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Description   *string    `json:"description"`
	Modality      *string    `json:"modality"`
	DurationHours *int       `json:"duration_hours"`
	CategoriaID   *uuid.UUID `json:"categoria_id"`
	ImageURL      *string    `json:"image_url"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CursoRequest is the create and full-replace payload.
type CursoRequest struct {
	Title         string     `json:"title" validate:"required,min=3,max=200"`
	Slug          string     `json:"slug" validate:"omitempty,max=160"`
	Description   *string    `json:"description"`
	Modality      *string    `json:"modality" validate:"omitempty,oneof=presencial ead hibrido"`
	DurationHours *int       `json:"duration_hours" validate:"omitempty,gte=0,lte=20000"`
	CategoriaID   *uuid.UUID `json:"categoria_id"`
	ImageURL      *string    `json:"image_url" validate:"omitempty,max=2048"`
	Active        bool       `json:"active"`
}

func (r *CursoRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Slug = strings.TrimSpace(r.Slug)
	r.Description = helper.TrimPtr(r.Description)
	if r.Modality = helper.TrimPtr(r.Modality); r.Modality != nil {
		low := strings.ToLower(*r.Modality)
		r.Modality = &low
	}
	r.ImageURL = helper.TrimPtr(r.ImageURL)
	if r.CategoriaID != nil && *r.CategoriaID == uuid.Nil {
		r.CategoriaID = nil
	}
}

func (r CursoRequest) Apply(m *model.CursoModel) {
	m.CursoTitle = r.Title
	m.CursoDescription = r.Description
	m.CursoModality = r.Modality
	m.CursoDurationHours = r.DurationHours
	m.CursoCategoriaID = r.CategoriaID
	m.CursoImageURL = r.ImageURL
	m.CursoActive = r.Active
}

func ToCursoDTO(m model.CursoModel) CursoDTO {
	return CursoDTO{
		ID:            m.CursoID,
		Title:         m.CursoTitle,
		Slug:          m.CursoSlug,
		Description:   m.CursoDescription,
		Modality:      m.CursoModality,
		DurationHours: m.CursoDurationHours,
		CategoriaID:   m.CursoCategoriaID,
		ImageURL:      m.CursoImageURL,
		Active:        m.CursoActive,
		CreatedAt:     m.CursoCreatedAt,
		UpdatedAt:     m.CursoUpdatedAt,
	}
}

func ToCursoDTOs(rows []model.CursoModel) []CursoDTO {
	out := make([]CursoDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToCursoDTO(r))
	}
	return out
}
