package controller

import (
	"errors"
	"log"
	"strings"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/professores/dto"
	"painel_backend/internals/features/academic/professores/model"
	helper "painel_backend/internals/helpers"
	helperOSS "painel_backend/internals/helpers/oss"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var professorSortColumns = map[string]string{
	"nome":       "professor_nome",
	"created_at": "professor_created_at",
}

type ProfessorController struct {
	DB    *gorm.DB
	Inv   cache.Invalidator
	Blobs helperOSS.BlobService
}

func NewProfessorController(db *gorm.DB, inv cache.Invalidator, blobs helperOSS.BlobService) *ProfessorController {
	return &ProfessorController{DB: db, Inv: inv, Blobs: blobs}
}

func (ctrl *ProfessorController) touch() {
	cache.Touch(ctrl.Inv, []string{constants.TagProfessores}, constants.PathPublicProfessores)
}

// GET ?id= | list (?q=&titulacao=)
func (ctrl *ProfessorController) GetProfessores(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	id, hasID, err := helper.ParseUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if hasID {
		var row model.ProfessorModel
		if err := db.First(&row, "professor_id = ?", id).Error; err != nil {
			return helper.FindError(c, err, "Professor não encontrado")
		}
		return helper.JsonOK(c, "ok", dto.ToProfessorDTO(row))
	}

	p := helper.ParseFiber(c, "nome", "asc", helper.DefaultOpts)
	q := db.Model(&model.ProfessorModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("LOWER(professor_nome) LIKE ?", helper.LikePattern(s))
	}
	if t := strings.TrimSpace(c.Query("titulacao")); t != "" {
		q = q.Where("professor_titulacao = ?", t)
	}
	var rows []model.ProfessorModel
	if err := q.Order(p.OrderClause(professorSortColumns, "nome")).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToProfessorDTOs(rows), nil)
}

func (ctrl *ProfessorController) CreateProfessor(c *fiber.Ctx) error {
	var body dto.ProfessorRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	var row model.ProfessorModel
	body.Apply(&row)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	ctrl.touch()
	return helper.JsonCreated(c, "Professor cadastrado", dto.ToProfessorDTO(row))
}

func (ctrl *ProfessorController) UpdateProfessor(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	var body dto.ProfessorRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	db := ctrl.DB.WithContext(c.UserContext())
	var row model.ProfessorModel
	if err := db.First(&row, "professor_id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Professor não encontrado")
	}
	body.Apply(&row)
	if err := db.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	ctrl.touch()
	return helper.JsonUpdated(c, "Professor atualizado", dto.ToProfessorDTO(row))
}

func (ctrl *ProfessorController) DeleteProfessor(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	db := ctrl.DB.WithContext(c.UserContext())
	var row model.ProfessorModel
	if err := db.First(&row, "professor_id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Professor não encontrado")
	}
	if err := db.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	ctrl.dropFile(c, row.ProfessorFotoURL)
	ctrl.touch()
	return helper.JsonDeleted(c, "Professor removido", fiber.Map{"id": id})
}

// POST /foto?id=  (multipart, field "file")
func (ctrl *ProfessorController) UploadFoto(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if ctrl.Blobs == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Armazenamento de arquivos indisponível")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo não encontrado (campo 'file')")
	}
	db := ctrl.DB.WithContext(c.UserContext())
	var row model.ProfessorModel
	if err := db.First(&row, "professor_id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Professor não encontrado")
	}

	url, err := ctrl.Blobs.UploadImage(c.UserContext(), "professores", row.ProfessorNome, fh, helperOSS.AvatarWebPOptions())
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	old := row.ProfessorFotoURL
	if err := db.Model(&row).Update("professor_foto_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	row.ProfessorFotoURL = &url
	ctrl.dropFile(c, old)
	ctrl.touch()
	return helper.JsonUpdated(c, "Foto atualizada", dto.ToProfessorDTO(row))
}

func (ctrl *ProfessorController) dropFile(c *fiber.Ctx, url *string) {
	if url == nil || ctrl.Blobs == nil {
		return
	}
	if err := ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *url); err != nil {
		log.Printf("[WARN] arquivo órfão %s: %v", *url, err)
	}
}
