package users

import (
	"context"
	"errors"
	"log"
	"os"

	"painel_backend/internals/constants"
	authService "painel_backend/internals/features/users/auth/service"
	"painel_backend/internals/features/users/user/model"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

var ErrAdminEnv = errors.New("ADMIN_EMAIL e ADMIN_PASSWORD são obrigatórios")

// SeedAdmin creates the first administrator; an existing e-mail is left alone.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, password string) (created bool, err error) {
	email = authService.NormalizeEmail(email)
	if email == "" || password == "" {
		return false, ErrAdminEnv
	}
	return seedOne(ctx, db, UserSeed{UserName: "Administrador", Email: email, Password: password, Role: constants.RoleAdmin})
}

func seedOne(ctx context.Context, db *gorm.DB, data UserSeed) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", data.Email).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		log.Printf("[INFO] seed: usuário '%s' já existe, ignorado", data.Email)
		return false, nil
	}

	hash, err := authService.HashPassword(data.Password)
	if err != nil {
		return false, err
	}
	role := data.Role
	if !constants.HasRole(role, constants.AllRoles) {
		role = constants.RoleAluno
	}
	u := model.UserModel{
		UserName: data.UserName,
		Email:    data.Email,
		Password: hash,
		Role:     role,
		Status:   constants.StatusActive,
	}
	if err := db.WithContext(ctx).Create(&u).Error; err != nil {
		return false, err
	}
	log.Printf("[INFO] seed: usuário '%s' (%s) criado", u.Email, u.Role)
	return true, nil
}

// SeedUsersFromJSON loads a list of UserSeed; bad rows are logged and skipped.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	var inputs []UserSeed
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return err
	}
	for _, data := range inputs {
		data.Email = authService.NormalizeEmail(data.Email)
		if data.Email == "" || data.Password == "" {
			log.Printf("[WARN] seed: usuário sem e-mail ou senha ignorado")
			continue
		}
		if _, err := seedOne(ctx, db, data); err != nil {
			log.Printf("[ERROR] seed: usuário '%s': %v", data.Email, err)
		}
	}
	return nil
}
