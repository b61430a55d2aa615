package service

import (
	"context"
	"errors"

	"painel_backend/internals/constants"
	authRepo "painel_backend/internals/features/users/auth/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("perfil não encontrado")

// Profile is the authenticated user as seen by handlers.
type Profile struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Status string    `json:"status"`
	Avatar *string   `json:"avatar"`
}

func (p Profile) Active() bool { return p.Status != constants.StatusInactive }

type ProfileResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (*Profile, error)
}

// DBProfileResolver loads the profile from the users table.
type DBProfileResolver struct {
	DB *gorm.DB
}

func NewProfileResolver(db *gorm.DB) *DBProfileResolver {
	return &DBProfileResolver{DB: db}
}

func (r *DBProfileResolver) Resolve(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	u, err := authRepo.FindUserByID(ctx, r.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &Profile{
		ID:     u.ID,
		Name:   u.UserName,
		Email:  u.Email,
		Role:   u.Role,
		Status: u.Status,
		Avatar: u.AvatarURL,
	}, nil
}
