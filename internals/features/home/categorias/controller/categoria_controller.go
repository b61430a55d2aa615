package controller

import (
	"strings"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/categorias/dto"
	"painel_backend/internals/features/home/categorias/model"
	helper "painel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var categoriaSortColumns = map[string]string{
	"nome":       "categoria_nome",
	"created_at": "categoria_created_at",
}

type CategoriaController struct {
	DB  *gorm.DB
	Inv cache.Invalidator
}

func NewCategoriaController(db *gorm.DB, inv cache.Invalidator) *CategoriaController {
	return &CategoriaController{DB: db, Inv: inv}
}

func (ctrl *CategoriaController) touch() {
	cache.Touch(ctrl.Inv, []string{constants.TagCategorias}, constants.PathPublicCategorias)
}

// =============================
// 📄 List / detail (?id=)
// =============================
func (ctrl *CategoriaController) GetCategorias(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())

	id, hasID, err := helper.ParseUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if hasID {
		var row model.CategoriaModel
		if err := db.First(&row, "categoria_id = ?", id).Error; err != nil {
			return helper.FindError(c, err, "Categoria não encontrada")
		}
		return helper.JsonOK(c, "ok", dto.ToCategoriaDTO(row))
	}

	p := helper.ParseFiber(c, "nome", "asc", helper.DefaultOpts)
	q := db.Model(&model.CategoriaModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("LOWER(categoria_nome) LIKE ?", helper.LikePattern(s))
	}
	var rows []model.CategoriaModel
	if err := q.Order(p.OrderClause(categoriaSortColumns, "nome")).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToCategoriaDTOs(rows), nil)
}

// =============================
// ➕ Create
// =============================
func (ctrl *CategoriaController) CreateCategoria(c *fiber.Ctx) error {
	var body dto.CategoriaRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	var row model.CategoriaModel
	body.Apply(&row)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.DBError(c, err, "Já existe uma categoria com esse nome")
	}
	ctrl.touch()
	return helper.JsonCreated(c, "Categoria criada", dto.ToCategoriaDTO(row))
}

// =============================
// 🔄 Update (full replace)
// =============================
func (ctrl *CategoriaController) UpdateCategoria(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	var body dto.CategoriaRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}

	db := ctrl.DB.WithContext(c.UserContext())
	var row model.CategoriaModel
	if err := db.First(&row, "categoria_id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Categoria não encontrada")
	}
	body.Apply(&row)
	if err := db.Save(&row).Error; err != nil {
		return helper.DBError(c, err, "Já existe uma categoria com esse nome")
	}
	ctrl.touch()
	return helper.JsonUpdated(c, "Categoria atualizada", dto.ToCategoriaDTO(row))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *CategoriaController) DeleteCategoria(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.CategoriaModel{}, "categoria_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Categoria não encontrada")
	}
	ctrl.touch()
	return helper.JsonDeleted(c, "Categoria removida", fiber.Map{"id": id})
}
