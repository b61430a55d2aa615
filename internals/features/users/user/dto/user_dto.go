package dto

import (
	"strings"
	"time"

	"painel_backend/internals/constants"
	"painel_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// ============================
// Response DTO
// ============================
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.ID,
		Name:      m.UserName,
		Email:     m.Email,
		Role:      m.Role,
		Status:    m.Status,
		Avatar:    m.AvatarURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserDTOs(rows []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToUserDTO(r))
	}
	return out
}

// ============================
// Create Request DTO
// ============================
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=3,max=120"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     string  `json:"role" validate:"required,oneof=Admin Secretaria Professor Aluno"`
	Status   string  `json:"status" validate:"omitempty,oneof=active inactive"`
	Avatar   *string `json:"avatar" validate:"omitempty,url"`
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Status == "" {
		r.Status = constants.StatusActive
	}
}

// ToModel expects an already hashed password.
func (r CreateUserRequest) ToModel(passwordHash string) model.UserModel {
	return model.UserModel{
		UserName:  r.Name,
		Email:     r.Email,
		Password:  passwordHash,
		Role:      r.Role,
		Status:    r.Status,
		AvatarURL: r.Avatar,
	}
}

// ============================
// Update Request DTO (full replace; password only when sent)
// ============================
type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=3,max=120"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"omitempty,min=8,max=72"`
	Role     string  `json:"role" validate:"required,oneof=Admin Secretaria Professor Aluno"`
	Status   string  `json:"status" validate:"required,oneof=active inactive"`
	Avatar   *string `json:"avatar" validate:"omitempty,url"`
}

func (r *UpdateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r UpdateUserRequest) Apply(m *model.UserModel) {
	m.UserName = r.Name
	m.Email = r.Email
	m.Role = r.Role
	m.Status = r.Status
	m.AvatarURL = r.Avatar
}
