package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"painel_backend/internals/constants"
	authModel "painel_backend/internals/features/users/auth/model"
	authRepo "painel_backend/internals/features/users/auth/repository"
	userDTO "painel_backend/internals/features/users/user/dto"
	userModel "painel_backend/internals/features/users/user/model"
	helper "painel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ==========================
   Const & Types
========================== */

type CookieConfig struct {
	Secure bool
	Domain string
}

type AuthService struct {
	DB      *gorm.DB
	Access  *TokenCodec
	Refresh *TokenCodec
	Cookies CookieConfig

	refreshSecret string
}

func NewAuthService(db *gorm.DB, accessSecret, refreshSecret string, cookies CookieConfig) *AuthService {
	return &AuthService{
		DB:            db,
		Access:        NewAccessCodec(accessSecret, AccessTTLDefault),
		Refresh:       NewRefreshCodec(refreshSecret, RefreshTTLDefault),
		Cookies:       cookies,
		refreshSecret: refreshSecret,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *AuthService) computeRefreshHash(token string) string {
	m := hmac.New(sha256.New, []byte(s.refreshSecret))
	_, _ = m.Write([]byte(token))
	return hex.EncodeToString(m.Sum(nil))
}

/* ==========================
   LOGIN (email + password)
========================== */

func (s *AuthService) Login(c *fiber.Ctx) error {
	var input LoginRequest
	if handled, err := helper.BindAndValidate(c, &input); handled {
		return err
	}

	user, err := authRepo.FindUserByEmail(c.UserContext(), s.DB, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "E-mail ou senha inválidos")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "E-mail ou senha inválidos")
	}
	if user.Status == constants.StatusInactive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada. Procure a administração.")
	}

	if err := s.issueTokens(c, *user); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Login realizado com sucesso", fiber.Map{
		"user": userDTO.ToUserDTO(*user),
	})
}

// issueTokens signs both tokens, stores the refresh hash and sets cookies.
func (s *AuthService) issueTokens(c *fiber.Ctx, user userModel.UserModel) error {
	accessToken, accessExp, err := s.Access.Issue(user.ID, user.Role)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	refreshToken, refreshExp, err := s.Refresh.Issue(user.ID, "")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := authRepo.CreateRefreshToken(c.UserContext(), s.DB, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		TokenHash: s.computeRefreshHash(refreshToken),
		ExpiresAt: refreshExp,
		UserAgent: helper.StrPtr(c.Get(fiber.HeaderUserAgent)),
		IP:        helper.StrPtr(c.IP()),
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar sessão")
	}

	s.setAuthCookies(c, accessToken, accessExp, refreshToken, refreshExp)
	return nil
}

func (s *AuthService) setAuthCookies(c *fiber.Ctx, accessToken string, accessExp time.Time, refreshToken string, refreshExp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   s.Cookies.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Domain:   s.Cookies.Domain,
		Path:     "/",
		Expires:  accessExp,
	})
	c.Cookie(&fiber.Cookie{
		Name:     helper.RefreshTokenCookie,
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   s.Cookies.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Domain:   s.Cookies.Domain,
		Path:     "/",
		Expires:  refreshExp,
	})
}

func (s *AuthService) clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{helper.AccessTokenCookie, helper.RefreshTokenCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   s.Cookies.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
			Domain:   s.Cookies.Domain,
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}

/* ==========================
   REFRESH (rotation)
========================== */

func (s *AuthService) RefreshToken(c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão expirada")
	}
	claims, err := s.Refresh.Decode(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão inválida")
	}

	ctx := c.UserContext()
	hash := s.computeRefreshHash(raw)
	if _, err := authRepo.FindActiveRefreshToken(ctx, s.DB, hash, nowUTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão desconhecida")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	user, err := authRepo.FindUserByID(ctx, s.DB, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão inválida")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if user.Status == constants.StatusInactive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	if err := authRepo.DeleteRefreshTokenByHash(ctx, s.DB, hash); err != nil {
		log.Printf("[WARN] refresh: falha ao remover hash antigo: %v", err)
	}
	if err := s.issueTokens(c, *user); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Sessão renovada", fiber.Map{"user": userDTO.ToUserDTO(*user)})
}

/* ==========================
   LOGOUT
========================== */

func (s *AuthService) Logout(c *fiber.Ctx) error {
	if rt := helper.GetRefreshTokenFromCookie(c); rt != "" {
		if err := authRepo.DeleteRefreshTokenByHash(c.UserContext(), s.DB, s.computeRefreshHash(rt)); err != nil {
			log.Printf("[WARN] logout: falha ao remover refresh token: %v", err)
		}
	}
	s.clearAuthCookies(c)
	return helper.JsonOK(c, "Logout realizado", nil)
}

// CleanupExpired removes refresh tokens past their expiry.
func (s *AuthService) CleanupExpired(ctx context.Context) (int64, error) {
	return authRepo.DeleteExpiredRefreshTokens(ctx, s.DB, nowUTC())
}

// NormalizeEmail is shared with the user seeder.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
