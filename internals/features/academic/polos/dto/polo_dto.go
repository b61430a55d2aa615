package dto

import (
	"strings"
	"time"

	"painel_backend/internals/features/academic/polos/model"
	helper "painel_backend/internals/helpers"

	"github.com/google/uuid"
)

// ============================
// Response DTO
// ============================

type PoloDTO struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	Zip       *string   `json:"zip"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Whatsapp  *string   `json:"whatsapp"`
	MapsURL   *string   `json:"maps_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

// PoloRequest: slug is optional; without it the slug is derived from name.
type PoloRequest struct {
	Slug     string  `json:"slug" validate:"omitempty,max=160"`
	Name     string  `json:"name" validate:"required,min=2,max=150"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
	City     *string `json:"city" validate:"omitempty,max=120"`
	State    *string `json:"state" validate:"omitempty,len=2,alpha"`
	Zip      *string `json:"zip" validate:"omitempty,max=10"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Whatsapp *string `json:"whatsapp" validate:"omitempty,max=30"`
	MapsURL  *string `json:"maps_url" validate:"omitempty,url"`
}

func (r *PoloRequest) Normalize() {
	r.Slug = strings.TrimSpace(r.Slug)
	r.Name = strings.TrimSpace(r.Name)
	r.Address = helper.TrimPtr(r.Address)
	r.City = helper.TrimPtr(r.City)
	if r.State = helper.TrimPtr(r.State); r.State != nil {
		up := strings.ToUpper(*r.State)
		r.State = &up
	}
	r.Zip = helper.TrimPtr(r.Zip)
	r.Phone = helper.TrimPtr(r.Phone)
	if r.Email = helper.TrimPtr(r.Email); r.Email != nil {
		low := strings.ToLower(*r.Email)
		r.Email = &low
	}
	r.Whatsapp = helper.TrimPtr(r.Whatsapp)
	r.MapsURL = helper.TrimPtr(r.MapsURL)
}

// Apply copies every mutable field except the slug, which is resolved separately.
func (r PoloRequest) Apply(m *model.PoloModel) {
	m.PoloName = r.Name
	m.PoloAddress = r.Address
	m.PoloCity = r.City
	m.PoloState = r.State
	m.PoloZip = r.Zip
	m.PoloPhone = r.Phone
	m.PoloEmail = r.Email
	m.PoloWhatsapp = r.Whatsapp
	m.PoloMapsURL = r.MapsURL
}

// ============================
// Converter
// ============================

func ToPoloDTO(m model.PoloModel) PoloDTO {
	return PoloDTO{
		ID:        m.PoloID,
		Slug:      m.PoloSlug,
		Name:      m.PoloName,
		Address:   m.PoloAddress,
		City:      m.PoloCity,
		State:     m.PoloState,
		Zip:       m.PoloZip,
		Phone:     m.PoloPhone,
		Email:     m.PoloEmail,
		Whatsapp:  m.PoloWhatsapp,
		MapsURL:   m.PoloMapsURL,
		CreatedAt: m.PoloCreatedAt,
		UpdatedAt: m.PoloUpdatedAt,
	}
}

func ToPoloDTOs(rows []model.PoloModel) []PoloDTO {
	out := make([]PoloDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToPoloDTO(r))
	}
	return out
}
