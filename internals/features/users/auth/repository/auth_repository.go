package repository

import (
	"context"
	"strings"
	"time"

	authModel "painel_backend/internals/features/users/auth/model"
	userModel "painel_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateRefreshToken(ctx context.Context, db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.WithContext(ctx).Create(rt).Error
}

// FindActiveRefreshToken returns the stored row for a hash that has not expired.
func FindActiveRefreshToken(ctx context.Context, db *gorm.DB, hash string, now time.Time) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.WithContext(ctx).
		Where("token_hash = ? AND expires_at > ?", hash, now).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokenByHash(ctx context.Context, db *gorm.DB, hash string) error {
	return db.WithContext(ctx).Where("token_hash = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}

// DeleteExpiredRefreshTokens is used by the cleanup job.
func DeleteExpiredRefreshTokens(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).Where("expires_at < ?", before).Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}

// UpdatePassword also revokes every stored refresh token of the user.
func UpdatePassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("id = ?", userID).
			Update("password", hash).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&authModel.RefreshTokenModel{}).Error
	})
}
