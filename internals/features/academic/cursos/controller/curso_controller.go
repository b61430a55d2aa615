package controller

import (
	"strings"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/cursos/dto"
	"painel_backend/internals/features/academic/cursos/model"
	helper "painel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var cursoSortColumns = map[string]string{
	"title":      "curso_title",
	"created_at": "curso_created_at",
	"duration":   "curso_duration_hours",
}

type CursoController struct {
	DB  *gorm.DB
	Inv cache.Invalidator
	// PublicOnly restricts reads to active courses.
	PublicOnly bool
}

func NewCursoController(db *gorm.DB, inv cache.Invalidator) *CursoController {
	return &CursoController{DB: db, Inv: inv}
}

func (ctrl *CursoController) touch() {
	cache.Touch(ctrl.Inv, []string{constants.TagCursos, constants.TagDashboard}, constants.PathPublicCursos)
}

// GET ?id= | ?slug= | list (?q=&active=&modality=&categoria_id=)
func (ctrl *CursoController) GetCursos(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())
	if ctrl.PublicOnly {
		db = db.Where("curso_active = ?", true)
	}

	id, hasID, err := helper.ParseUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if slug := strings.TrimSpace(c.Query("slug")); hasID || slug != "" {
		var row model.CursoModel
		q := db
		if hasID {
			q = q.Where("curso_id = ?", id)
		} else {
			q = q.Where("curso_slug = ?", strings.ToLower(slug))
		}
		if err := q.First(&row).Error; err != nil {
			return helper.FindError(c, err, "Curso não encontrado")
		}
		return helper.JsonOK(c, "ok", dto.ToCursoDTO(row))
	}

	p := helper.ParseFiber(c, "title", "asc", helper.DefaultOpts)
	q := db.Model(&model.CursoModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("LOWER(curso_title) LIKE ?", helper.LikePattern(s))
	}
	if active, ok := helper.QueryBool(c, "active"); ok && !ctrl.PublicOnly {
		q = q.Where("curso_active = ?", active)
	}
	if m := strings.TrimSpace(c.Query("modality")); m != "" {
		q = q.Where("curso_modality = ?", strings.ToLower(m))
	}
	catID, err := helper.QueryUUID(c, "categoria_id")
	if err != nil {
		return err
	}
	if catID != nil {
		q = q.Where("curso_categoria_id = ?", *catID)
	}

	var rows []model.CursoModel
	if err := q.Order(p.OrderClause(cursoSortColumns, "title")).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToCursoDTOs(rows), nil)
}

func (ctrl *CursoController) CreateCurso(c *fiber.Ctx) error {
	var body dto.CursoRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	ctx := c.UserContext()
	db := ctrl.DB.WithContext(ctx)

	slug, err := helper.ResolveSlug(ctx, db, "cursos", "curso_slug", body.Slug, body.Title, "", "curso", nil)
	if err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	row := model.CursoModel{CursoSlug: slug}
	body.Apply(&row)
	if err := db.Create(&row).Error; err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	ctrl.touch()
	return helper.JsonCreated(c, "Curso criado", dto.ToCursoDTO(row))
}

func (ctrl *CursoController) UpdateCurso(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	var body dto.CursoRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	ctx := c.UserContext()
	db := ctrl.DB.WithContext(ctx)

	var row model.CursoModel
	if err := db.First(&row, "curso_id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Curso não encontrado")
	}
	slug, err := helper.ResolveSlug(ctx, db, "cursos", "curso_slug", body.Slug, body.Title, row.CursoSlug, "curso", nil)
	if err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	row.CursoSlug = slug
	body.Apply(&row)
	if err := db.Save(&row).Error; err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	ctrl.touch()
	return helper.JsonUpdated(c, "Curso atualizado", dto.ToCursoDTO(row))
}

func (ctrl *CursoController) DeleteCurso(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.CursoModel{}, "curso_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Curso não encontrado")
	}
	ctrl.touch()
	return helper.JsonDeleted(c, "Curso removido", fiber.Map{"id": id})
}
