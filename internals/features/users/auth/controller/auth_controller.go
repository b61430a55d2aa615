package controller

import (
	"errors"

	authRepo "painel_backend/internals/features/users/auth/repository"
	"painel_backend/internals/features/users/auth/service"
	helper "painel_backend/internals/helpers"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	Svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return ac.Svc.Login(c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return ac.Svc.RefreshToken(c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return ac.Svc.Logout(c)
}

// Me returns the profile resolved by the gate.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	profile, ok := authMiddleware.CurrentProfile(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Não autenticado")
	}
	return helper.JsonOK(c, "ok", profile)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	profile, ok := authMiddleware.CurrentProfile(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Não autenticado")
	}
	var body ChangePasswordRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}

	ctx := c.UserContext()
	user, err := authRepo.FindUserByID(ctx, ac.Svc.DB, profile.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := service.CheckPasswordHash(user.Password, body.OldPassword); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Senha atual incorreta")
	}
	hash, err := service.HashPassword(body.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar hash da senha")
	}
	if err := authRepo.UpdatePassword(ctx, ac.Svc.DB, user.ID, hash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Senha alterada", nil)
}
