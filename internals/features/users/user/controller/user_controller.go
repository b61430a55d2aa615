package controller

import (
	"errors"
	"log"
	"strings"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	authRepo "painel_backend/internals/features/users/auth/repository"
	authService "painel_backend/internals/features/users/auth/service"
	"painel_backend/internals/features/users/user/dto"
	"painel_backend/internals/features/users/user/model"
	helper "painel_backend/internals/helpers"
	helperOSS "painel_backend/internals/helpers/oss"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var userSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "user_name",
	"email":      "email",
	"role":       "role",
}

type UserController struct {
	DB    *gorm.DB
	Inv   cache.Invalidator
	Blobs helperOSS.BlobService
}

func NewUserController(db *gorm.DB, inv cache.Invalidator, blobs helperOSS.BlobService) *UserController {
	return &UserController{DB: db, Inv: inv, Blobs: blobs}
}

func (uc *UserController) touch() {
	cache.Touch(uc.Inv, []string{constants.TagUsers})
}

// GET /api/a/users        → paginated list (?q=&role=&status=&page=&per_page=)
// GET /api/a/users?id=    → detail
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	id, hasID, err := helper.ParseUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if hasID {
		var user model.UserModel
		if err := uc.DB.WithContext(c.UserContext()).First(&user, "id = ?", id).Error; err != nil {
			return helper.FindError(c, err, "Usuário não encontrado")
		}
		return helper.JsonOK(c, "ok", dto.ToUserDTO(user))
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	q := uc.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		pat := helper.LikePattern(s)
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", pat, pat)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.UserModel
	if err := q.Order(p.OrderClause(userSortColumns, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToUserDTOs(rows), helper.BuildMeta(total, p))
}

// POST /api/a/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	hash, err := authService.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar hash da senha")
	}
	user := body.ToModel(hash)
	if err := uc.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		return helper.DBError(c, err, "E-mail já cadastrado")
	}
	uc.touch()
	return helper.JsonCreated(c, "Usuário criado", dto.ToUserDTO(user))
}

// PATCH /api/a/users?id=
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	var body dto.UpdateUserRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}

	db := uc.DB.WithContext(c.UserContext())
	var user model.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Usuário não encontrado")
	}
	body.Apply(&user)
	var hash string
	if body.Password != "" {
		if hash, err = authService.HashPassword(body.Password); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar hash da senha")
		}
	}
	// a new password also ends every open session of the user
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		if hash == "" {
			return nil
		}
		return authRepo.UpdatePassword(c.UserContext(), tx, user.ID, hash)
	}); err != nil {
		return helper.DBError(c, err, "E-mail já cadastrado")
	}
	uc.touch()
	return helper.JsonUpdated(c, "Usuário atualizado", dto.ToUserDTO(user))
}

// DELETE /api/a/users?id=
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if me, ok := authMiddleware.CurrentProfile(c); ok && me.ID == id {
		return helper.JsonError(c, fiber.StatusBadRequest, "Você não pode remover a própria conta")
	}

	db := uc.DB.WithContext(c.UserContext())
	var user model.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Usuário não encontrado")
	}
	if err := db.Delete(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if user.AvatarURL != nil && uc.Blobs != nil {
		if err := uc.Blobs.DeleteByPublicURL(c.UserContext(), *user.AvatarURL); err != nil {
			log.Printf("[WARN] avatar órfão %s: %v", *user.AvatarURL, err)
		}
	}
	uc.touch()
	return helper.JsonDeleted(c, "Usuário removido", fiber.Map{"id": user.ID})
}

// POST /api/a/users/avatar?id=  (multipart, field "file")
func (uc *UserController) UploadAvatar(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if uc.Blobs == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Armazenamento de arquivos indisponível")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo não encontrado (campo 'file')")
	}

	db := uc.DB.WithContext(c.UserContext())
	var user model.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Usuário não encontrado")
	}

	url, err := uc.Blobs.UploadImage(c.UserContext(), "avatars", user.ID.String(), fh, helperOSS.AvatarWebPOptions())
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	old := user.AvatarURL
	if err := db.Model(&user).Update("avatar_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	user.AvatarURL = &url
	if old != nil && *old != url {
		if err := uc.Blobs.DeleteByPublicURL(c.UserContext(), *old); err != nil {
			log.Printf("[WARN] avatar antigo %s: %v", *old, err)
		}
	}
	uc.touch()
	return helper.JsonUpdated(c, "Avatar atualizado", dto.ToUserDTO(user))
}
