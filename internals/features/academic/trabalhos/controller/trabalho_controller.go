package controller

import (
	"strings"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/trabalhos/dto"
	"painel_backend/internals/features/academic/trabalhos/model"
	helper "painel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var trabalhoSortColumns = map[string]string{
	"created_at": "trabalho_created_at",
	"titulo":     "trabalho_titulo",
	"visitantes": "trabalho_visitantes",
}

type TrabalhoController struct {
	DB  *gorm.DB
	Inv cache.Invalidator
}

func NewTrabalhoController(db *gorm.DB, inv cache.Invalidator) *TrabalhoController {
	return &TrabalhoController{DB: db, Inv: inv}
}

func (ctrl *TrabalhoController) touch() {
	cache.Touch(ctrl.Inv, []string{constants.TagTrabalhos, constants.TagDashboard}, constants.PathPublicTrabalhos)
}

// GET ?id= | ?slug= | list (?q=&curso_id=&sort_by=visitantes)
func (ctrl *TrabalhoController) GetTrabalhos(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	id, hasID, err := helper.ParseUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if slug := strings.TrimSpace(c.Query("slug")); hasID || slug != "" {
		var row model.TrabalhoModel
		q := db
		if hasID {
			q = q.Where("trabalho_id = ?", id)
		} else {
			q = q.Where("trabalho_slug = ?", strings.ToLower(slug))
		}
		if err := q.First(&row).Error; err != nil {
			return helper.FindError(c, err, "Trabalho não encontrado")
		}
		return helper.JsonOK(c, "ok", dto.ToTrabalhoDTO(row))
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	q := db.Model(&model.TrabalhoModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		pat := helper.LikePattern(s)
		q = q.Where("LOWER(trabalho_titulo) LIKE ? OR LOWER(trabalho_autor) LIKE ?", pat, pat)
	}
	cursoID, err := helper.QueryUUID(c, "curso_id")
	if err != nil {
		return err
	}
	if cursoID != nil {
		q = q.Where("trabalho_curso_id = ?", *cursoID)
	}
	var rows []model.TrabalhoModel
	if err := q.Order(p.OrderClause(trabalhoSortColumns, "created_at")).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToTrabalhoDTOs(rows), nil)
}

func (ctrl *TrabalhoController) CreateTrabalho(c *fiber.Ctx) error {
	var body dto.TrabalhoRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	ctx := c.UserContext()
	db := ctrl.DB.WithContext(ctx)

	slug, err := helper.ResolveSlug(ctx, db, "trabalhos", "trabalho_slug", body.Slug, body.Titulo, "", "trabalho", nil)
	if err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	row := model.TrabalhoModel{TrabalhoSlug: slug}
	body.Apply(&row)
	if err := db.Create(&row).Error; err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	ctrl.touch()
	return helper.JsonCreated(c, "Trabalho criado", dto.ToTrabalhoDTO(row))
}

func (ctrl *TrabalhoController) UpdateTrabalho(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	var body dto.TrabalhoRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	ctx := c.UserContext()
	db := ctrl.DB.WithContext(ctx)

	var row model.TrabalhoModel
	if err := db.First(&row, "trabalho_id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Trabalho não encontrado")
	}
	slug, err := helper.ResolveSlug(ctx, db, "trabalhos", "trabalho_slug", body.Slug, body.Titulo, row.TrabalhoSlug, "trabalho", nil)
	if err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	row.TrabalhoSlug = slug
	body.Apply(&row)
	// the counter is owned by RegisterVisit
	if err := db.Omit("trabalho_visitantes").Save(&row).Error; err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	ctrl.touch()
	return helper.JsonUpdated(c, "Trabalho atualizado", dto.ToTrabalhoDTO(row))
}

func (ctrl *TrabalhoController) DeleteTrabalho(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.TrabalhoModel{}, "trabalho_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Trabalho não encontrado")
	}
	ctrl.touch()
	return helper.JsonDeleted(c, "Trabalho removido", fiber.Map{"id": id})
}

// POST /api/public/trabalhos/visit?slug=
// Single UPDATE ... SET visitantes = visitantes + 1, so concurrent visits never lose counts.
func (ctrl *TrabalhoController) RegisterVisit(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Query("slug")))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "slug obrigatório")
	}
	db := ctrl.DB.WithContext(c.UserContext())
	res := db.Model(&model.TrabalhoModel{}).
		Where("trabalho_slug = ?", slug).
		UpdateColumn("trabalho_visitantes", gorm.Expr("trabalho_visitantes + 1"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Trabalho não encontrado")
	}

	var visitantes int64
	if err := db.Model(&model.TrabalhoModel{}).
		Where("trabalho_slug = ?", slug).
		Select("trabalho_visitantes").
		Scan(&visitantes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	cache.Touch(ctrl.Inv, []string{constants.TagDashboard}, constants.PathPublicTrabalhos)
	return helper.JsonOK(c, "Visita registrada", fiber.Map{"slug": slug, "visitantes": visitantes})
}
