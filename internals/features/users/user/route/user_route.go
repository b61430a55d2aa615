package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/users/user/controller"
	helperOSS "painel_backend/internals/helpers/oss"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserAdminRoutes mounts /users under an already gated admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator, blobs helperOSS.BlobService) {
	ctrl := controller.NewUserController(db, inv, blobs)

	users := admin.Group("/users",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("usuários"), constants.AdminOnly),
	)
	users.Get("/", ctrl.GetUsers)
	users.Post("/", ctrl.CreateUser)
	users.Patch("/", ctrl.UpdateUser)
	users.Delete("/", ctrl.DeleteUser)
	users.Post("/avatar", ctrl.UploadAvatar)
}
