package route

import (
	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/academic/professores/controller"
	helperOSS "painel_backend/internals/helpers/oss"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProfessorAdminRoutes(admin fiber.Router, db *gorm.DB, inv cache.Invalidator, blobs helperOSS.BlobService) {
	ctrl := controller.NewProfessorController(db, inv, blobs)

	g := admin.Group("/professores",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("professores"), constants.AdminOrSecretaria),
	)
	g.Get("/", ctrl.GetProfessores)
	g.Post("/", ctrl.CreateProfessor)
	g.Patch("/", ctrl.UpdateProfessor)
	g.Delete("/", ctrl.DeleteProfessor)
	g.Post("/foto", ctrl.UploadFoto)
}

func ProfessorPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfessorController(db, nil, nil)
	public.Get("/professores", ctrl.GetProfessores)
}
