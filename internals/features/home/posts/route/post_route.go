package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/posts/controller"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PostAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator) {
	ctrl := controller.NewPostController(db, inv)

	g := admin.Group("/posts",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("posts"), constants.AdminOrSecretaria),
	)
	g.Get("/", ctrl.GetPosts)      // 📄 list / detail
	g.Post("/", ctrl.CreatePost)   // ➕
	g.Patch("/", ctrl.UpdatePost)  // 🔄 ?id=
	g.Delete("/", ctrl.DeletePost) // 🗑️ ?id=
}

// PostPublicRoutes serves published posts only.
func PostPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := &controller.PostController{DB: db, PublicOnly: true}
	public.Get("/posts", ctrl.GetPosts)
}
