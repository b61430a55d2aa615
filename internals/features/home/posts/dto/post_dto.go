package dto

import (
	"strings"
	"time"

	"painel_backend/internals/features/home/posts/model"
	helper "painel_backend/internals/helpers"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// ============================
// Response DTO
// ============================

type PostDTO struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Date        *string    `json:"date"`
	Author      *string    `json:"author"`
	Content     string     `json:"content"`
	Published   bool       `json:"published"`
	CoverURL    *string    `json:"cover_url"`
	CategoriaID *uuid.UUID `json:"categoria_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type PostRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Slug        string     `json:"slug" validate:"omitempty,max=160"`
	Date        string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Author      *string    `json:"author" validate:"omitempty,max=120"`
	Content     string     `json:"content" validate:"required"`
	Published   bool       `json:"published"`
	CoverURL    *string    `json:"cover_url" validate:"omitempty,max=2048"`
	CategoriaID *uuid.UUID `json:"categoria_id"`
}

func (r *PostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Slug = strings.TrimSpace(r.Slug)
	r.Date = strings.TrimSpace(r.Date)
	r.Author = helper.TrimPtr(r.Author)
	r.Content = strings.TrimSpace(r.Content)
	r.CoverURL = helper.TrimPtr(r.CoverURL)
	if r.CategoriaID != nil && *r.CategoriaID == uuid.Nil {
		r.CategoriaID = nil
	}
}

// Apply copies the mutable fields; the date was already validated.
func (r PostRequest) Apply(m *model.PostModel) {
	m.PostTitle = r.Title
	m.PostDate = nil
	if r.Date != "" {
		if d, err := time.Parse(DateLayout, r.Date); err == nil {
			m.PostDate = &d
		}
	}
	m.PostAuthor = r.Author
	m.PostContent = r.Content
	m.PostPublished = r.Published
	m.PostCoverURL = r.CoverURL
	m.PostCategoriaID = r.CategoriaID
}

// ============================
// Converter
// ============================

func ToPostDTO(m model.PostModel) PostDTO {
	var date *string
	if m.PostDate != nil {
		s := m.PostDate.UTC().Format(DateLayout)
		date = &s
	}
	return PostDTO{
		ID:          m.PostID,
		Slug:        m.PostSlug,
		Title:       m.PostTitle,
		Date:        date,
		Author:      m.PostAuthor,
		Content:     m.PostContent,
		Published:   m.PostPublished,
		CoverURL:    m.PostCoverURL,
		CategoriaID: m.PostCategoriaID,
		CreatedAt:   m.PostCreatedAt,
		UpdatedAt:   m.PostUpdatedAt,
	}
}

func ToPostDTOs(rows []model.PostModel) []PostDTO {
	out := make([]PostDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToPostDTO(r))
	}
	return out
}
