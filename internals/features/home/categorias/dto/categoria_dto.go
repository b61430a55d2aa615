package dto

import (
	"strings"
	"time"

	"painel_backend/internals/features/home/categorias/model"
	helper "painel_backend/internals/helpers"

	"github.com/google/uuid"
)

type CategoriaDTO struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Icone     *string   `json:"icone"`
	Cor       *string   `json:"cor"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoriaRequest is used for both create and full-replace update.
type CategoriaRequest struct {
	Nome  string  `json:"nome" validate:"required,min=2,max=80"`
	Icone *string `json:"icone" validate:"omitempty,max=60"`
	Cor   *string `json:"cor" validate:"omitempty,hexcolor"`
}

func (r *CategoriaRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Icone = helper.TrimPtr(r.Icone)
	r.Cor = helper.TrimPtr(r.Cor)
	if r.Cor != nil {
		low := strings.ToLower(*r.Cor)
		r.Cor = &low
	}
}

func (r CategoriaRequest) Apply(m *model.CategoriaModel) {
	m.CategoriaNome = r.Nome
	m.CategoriaIcone = r.Icone
	m.CategoriaCor = r.Cor
}

func ToCategoriaDTO(m model.CategoriaModel) CategoriaDTO {
	return CategoriaDTO{
		ID:        m.CategoriaID,
		Nome:      m.CategoriaNome,
		Icone:     m.CategoriaIcone,
		Cor:       m.CategoriaCor,
		CreatedAt: m.CategoriaCreatedAt,
		UpdatedAt: m.CategoriaUpdatedAt,
	}
}

func ToCategoriaDTOs(rows []model.CategoriaModel) []CategoriaDTO {
	out := make([]CategoriaDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToCategoriaDTO(r))
	}
	return out
}
