package controller

import (
	"fmt"
	"strings"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/ouvidoria/dto"
	"painel_backend/internals/features/home/ouvidoria/model"
	helper "painel_backend/internals/helpers"
	"painel_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ouvidoriaSortColumns = map[string]string{
	"created_at": "ouvidoria_created_at",
	"status":     "ouvidoria_status",
	"nome":       "ouvidoria_nome",
}

const protocoloAttempts = 3

type OuvidoriaController struct {
	DB  *gorm.DB
	Inv cache.Invalidator
}

func NewOuvidoriaController(db *gorm.DB, inv cache.Invalidator) *OuvidoriaController {
	return &OuvidoriaController{DB: db, Inv: inv}
}

func (ctrl *OuvidoriaController) touch() {
	cache.Touch(ctrl.Inv, []string{constants.TagOuvidoria, constants.TagDashboard})
}

// NewProtocolo formats OUV-YYYYMMDD-XXXXXX using the local calendar day.
func NewProtocolo() string {
	day := dbtime.ToLocal(dbtime.NowUTC()).Format("20060102")
	rnd := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("OUV-%s-%s", day, rnd)
}

// insertWithProtocolo retries on the rare protocol collision.
func (ctrl *OuvidoriaController) insertWithProtocolo(db *gorm.DB, build func(protocolo string) model.OuvidoriaModel) (model.OuvidoriaModel, error) {
	var (
		row model.OuvidoriaModel
		err error
	)
	for i := 0; i < protocoloAttempts; i++ {
		row = build(NewProtocolo())
		if err = db.Create(&row).Error; err == nil || !helper.IsUniqueViolation(err) {
			return row, err
		}
	}
	return row, err
}

// =============================
// 🌐 Public: POST /api/public/ouvidoria
// =============================
func (ctrl *OuvidoriaController) SubmitPublic(c *fiber.Ctx) error {
	var body dto.PublicOuvidoriaRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	row, err := ctrl.insertWithProtocolo(ctrl.DB.WithContext(c.UserContext()), body.ToModel)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	ctrl.touch()
	return helper.JsonCreated(c, "Manifestação registrada", fiber.Map{
		"protocolo": row.OuvidoriaProtocolo,
		"status":    row.OuvidoriaStatus,
	})
}

// GET /api/public/ouvidoria?protocolo=
func (ctrl *OuvidoriaController) GetByProtocoloPublic(c *fiber.Ctx) error {
	protocolo := strings.ToUpper(strings.TrimSpace(c.Query("protocolo")))
	if protocolo == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "protocolo obrigatório")
	}
	var row model.OuvidoriaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "ouvidoria_protocolo = ?", protocolo).Error; err != nil {
		return helper.FindError(c, err, "Protocolo não encontrado")
	}
	return helper.JsonOK(c, "ok", dto.ToOuvidoriaStatusDTO(row))
}

// =============================
// 📄 Admin: GET ?id= | ?protocolo= | paginated list (?status=&tipo=&q=)
// =============================
func (ctrl *OuvidoriaController) GetOuvidorias(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	id, hasID, err := helper.ParseUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if prot := strings.TrimSpace(c.Query("protocolo")); hasID || prot != "" {
		var row model.OuvidoriaModel
		q := db
		if hasID {
			q = q.Where("ouvidoria_id = ?", id)
		} else {
			q = q.Where("ouvidoria_protocolo = ?", strings.ToUpper(prot))
		}
		if err := q.First(&row).Error; err != nil {
			return helper.FindError(c, err, "Manifestação não encontrada")
		}
		return helper.JsonOK(c, "ok", dto.ToOuvidoriaDTO(row))
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	q := db.Model(&model.OuvidoriaModel{})
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("ouvidoria_status = ?", st)
	}
	if tp := strings.TrimSpace(c.Query("tipo")); tp != "" {
		q = q.Where("ouvidoria_tipo = ?", strings.ToLower(tp))
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		pat := helper.LikePattern(s)
		q = q.Where("LOWER(ouvidoria_assunto) LIKE ? OR LOWER(ouvidoria_nome) LIKE ? OR LOWER(ouvidoria_email) LIKE ?", pat, pat, pat)
	}
	respID, err := helper.QueryUUID(c, "responsavel_id")
	if err != nil {
		return err
	}
	if respID != nil {
		q = q.Where("ouvidoria_responsavel_id = ?", *respID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var rows []model.OuvidoriaModel
	if err := q.Order(p.OrderClause(ouvidoriaSortColumns, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToOuvidoriaDTOs(rows), helper.BuildMeta(total, p))
}

// =============================
// ➕ Admin create (e.g. phone or in-person tickets)
// =============================
func (ctrl *OuvidoriaController) CreateOuvidoria(c *fiber.Ctx) error {
	var body dto.OuvidoriaRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	now := dbtime.NowUTC()
	row, err := ctrl.insertWithProtocolo(ctrl.DB.WithContext(c.UserContext()), func(protocolo string) model.OuvidoriaModel {
		m := model.OuvidoriaModel{OuvidoriaProtocolo: protocolo}
		body.Apply(&m, now)
		return m
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	ctrl.touch()
	return helper.JsonCreated(c, "Manifestação registrada", dto.ToOuvidoriaDTO(row))
}

// =============================
// 🔄 Admin update (full replace, no transition guard)
// =============================
func (ctrl *OuvidoriaController) UpdateOuvidoria(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	var body dto.OuvidoriaRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	db := ctrl.DB.WithContext(c.UserContext())
	var row model.OuvidoriaModel
	if err := db.First(&row, "ouvidoria_id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Manifestação não encontrada")
	}
	body.Apply(&row, dbtime.NowUTC())
	if err := db.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	ctrl.touch()
	return helper.JsonUpdated(c, "Manifestação atualizada", dto.ToOuvidoriaDTO(row))
}

// =============================
// 🗑️ Admin delete
// =============================
func (ctrl *OuvidoriaController) DeleteOuvidoria(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.OuvidoriaModel{}, "ouvidoria_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Manifestação não encontrada")
	}
	ctrl.touch()
	return helper.JsonDeleted(c, "Manifestação removida", fiber.Map{"id": id})
}
