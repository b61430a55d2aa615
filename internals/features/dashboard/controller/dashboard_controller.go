package controller

import (
	"log"

	"painel_backend/internals/features/dashboard/service"
	helper "painel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Svc *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

/* GET /api/a/dashboard */
func (h *DashboardController) GetSummary(c *fiber.Ctx) error {
	sum, err := h.Svc.Summary(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] dashboard: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", sum)
}
