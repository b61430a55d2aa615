package controller

import (
	"strings"
	"time"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/posts/dto"
	"painel_backend/internals/features/home/posts/model"
	helper "painel_backend/internals/helpers"
	"painel_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var postSortColumns = map[string]string{
	"date":       "post_date",
	"title":      "post_title",
	"created_at": "post_created_at",
}

type PostController struct {
	DB  *gorm.DB
	Inv cache.Invalidator
	// PublicOnly hides unpublished posts.
	PublicOnly bool
}

func NewPostController(db *gorm.DB, inv cache.Invalidator) *PostController {
	return &PostController{DB: db, Inv: inv}
}

func (ctrl *PostController) touch() {
	cache.Touch(ctrl.Inv, []string{constants.TagPosts, constants.TagDashboard}, constants.PathPublicPosts)
}

// =============================
// 📄 GET ?id= | ?slug= | list (?q=&published=&categoria_id=&author=)
// =============================
func (ctrl *PostController) GetPosts(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.UserContext())
	if ctrl.PublicOnly {
		db = db.Where("post_published = ?", true)
	}

	id, hasID, err := helper.ParseUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	if slug := strings.TrimSpace(c.Query("slug")); hasID || slug != "" {
		var row model.PostModel
		q := db
		if hasID {
			q = q.Where("post_id = ?", id)
		} else {
			q = q.Where("post_slug = ?", strings.ToLower(slug))
		}
		if err := q.First(&row).Error; err != nil {
			return helper.FindError(c, err, "Post não encontrado")
		}
		return helper.JsonOK(c, "ok", dto.ToPostDTO(row))
	}

	p := helper.ParseFiber(c, "date", "desc", helper.DefaultOpts)
	q := db.Model(&model.PostModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		pat := helper.LikePattern(s)
		q = q.Where("LOWER(post_title) LIKE ? OR LOWER(post_content) LIKE ?", pat, pat)
	}
	if pub, ok := helper.QueryBool(c, "published"); ok && !ctrl.PublicOnly {
		q = q.Where("post_published = ?", pub)
	}
	if a := strings.TrimSpace(c.Query("author")); a != "" {
		q = q.Where("post_author = ?", a)
	}
	catID, err := helper.QueryUUID(c, "categoria_id")
	if err != nil {
		return err
	}
	if catID != nil {
		q = q.Where("post_categoria_id = ?", *catID)
	}

	var rows []model.PostModel
	if err := q.Order(p.OrderClause(postSortColumns, "date")).
		Order("post_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToPostDTOs(rows), nil)
}

// =============================
// ➕ Create
// =============================
func (ctrl *PostController) CreatePost(c *fiber.Ctx) error {
	var body dto.PostRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	ctx := c.UserContext()
	db := ctrl.DB.WithContext(ctx)

	slug, err := helper.ResolveSlug(ctx, db, "posts", "post_slug", body.Slug, body.Title, "", "post", nil)
	if err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	row := model.PostModel{PostSlug: slug}
	body.Apply(&row)
	if row.PostDate == nil {
		today := dbtime.ToLocal(dbtime.NowUTC())
		d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		row.PostDate = &d
	}
	if err := db.Create(&row).Error; err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	ctrl.touch()
	return helper.JsonCreated(c, "Post criado", dto.ToPostDTO(row))
}

// =============================
// 🔄 Update (full replace)
// =============================
func (ctrl *PostController) UpdatePost(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	var body dto.PostRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	ctx := c.UserContext()
	db := ctrl.DB.WithContext(ctx)

	var row model.PostModel
	if err := db.First(&row, "post_id = ?", id).Error; err != nil {
		return helper.FindError(c, err, "Post não encontrado")
	}
	slug, err := helper.ResolveSlug(ctx, db, "posts", "post_slug", body.Slug, body.Title, row.PostSlug, "post", nil)
	if err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	row.PostSlug = slug
	body.Apply(&row)
	if err := db.Save(&row).Error; err != nil {
		return helper.DBError(c, err, "Slug já está em uso")
	}
	ctrl.touch()
	return helper.JsonUpdated(c, "Post atualizado", dto.ToPostDTO(row))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *PostController) DeletePost(c *fiber.Ctx) error {
	id, err := helper.RequireUUIDQuery(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.PostModel{}, "post_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Post não encontrado")
	}
	ctrl.touch()
	return helper.JsonDeleted(c, "Post removido", fiber.Map{"id": id})
}
