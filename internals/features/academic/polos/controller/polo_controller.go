package controller

import (
	"strings"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/polos/dto"
	"painel_backend/internals/features/academic/polos/model"
	helper "painel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var poloSortColumns = map[string]string{
	"name":       "polo_name",
	"city":       "polo_city",
	"created_at": "polo_created_at",
}

type PoloController struct {
	DB  *gorm.DB
	Inv cache.Invalidator
}

func NewPoloController(db *gorm.DB, inv cache.Invalidator) *PoloController {
	return &PoloController{DB: db, Inv: inv}
}

func (ctrl *PoloController) touch() {
	cache.Touch(ctrl.Inv, []string{constants.TagPolos}, constants.PathPublicPolos)
}

// GET ?id= | ?slug= | list (?q=&state=&city=)
func (ctrl *PoloController) GetPolos(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	id, hasID, err := helper.ParseUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if slug := strings.TrimSpace(c.Query("slug")); hasID || slug != "" {
		var row model.PoloModel
		q := db
		if hasID {
			q = q.Where("polo_id = ?", id)
		} else {
			q = q.Where("polo_slug = ?", strings.ToLower(slug))
		}
		if err := q.First(&row).Error; err != nil {
			return helper.FindError(c, err, "Polo não encontrado")
		}
		return helper.JsonOK(c, "ok", dto.ToPoloDTO(row))
	}

	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)
	q := db.Model(&model.PoloModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		pat := helper.LikePattern(s)
		q = q.Where("LOWER(polo_name) LIKE ? OR LOWER(polo_city) LIKE ?", pat, pat)
	}
	if st := strings.TrimSpace(c.Query("state")); st != "" {
		q = q.Where("polo_state = ?", strings.ToUpper(st))
	}
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		q = q.Where("LOWER(polo_city) = ?", strings.ToLower(city))
	}
	var rows []model.PoloModel
	if err := q.Order(p.OrderClause(poloSortColumns, "name")).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToPoloDTOs(rows), nil)
}

func (ctrl *PoloController) CreatePolo(c *fiber.Ctx) error {
	var body dto.PoloRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	ctx := c.UserContext()
	db := ctrl.DB.WithContext(ctx)

	slug, err := helper.ResolveSlug(ctx, db, "polos", "polo_slug", body.Slug, body.Name, "", "polo", nil)
	if err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	row := model.PoloModel{PoloSlug: slug}
	body.Apply(&row)
	if err := db.Create(&row).Error; err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	ctrl.touch()
	return helper.JsonCreated(c, "Polo criado", dto.ToPoloDTO(row))
}

func (ctrl *PoloController) UpdatePolo(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	var body dto.PoloRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	ctx := c.UserContext()
	db := ctrl.DB.WithContext(ctx)

	var row model.PoloModel
	if err := db.First(&row, "polo_id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Polo não encontrado")
	}
	slug, err := helper.ResolveSlug(ctx, db, "polos", "polo_slug", body.Slug, body.Name, row.PoloSlug, "polo", nil)
	if err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	row.PoloSlug = slug
	body.Apply(&row)
	if err := db.Save(&row).Error; err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	ctrl.touch()
	return helper.JsonUpdated(c, "Polo atualizado", dto.ToPoloDTO(row))
}

func (ctrl *PoloController) DeletePolo(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.PoloModel{}, "polo_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Polo não encontrado")
	}
	ctrl.touch()
	return helper.JsonDeleted(c, "Polo removido", fiber.Map{"id": id})
}
