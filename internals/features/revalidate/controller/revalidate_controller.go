package controller

import (
	"log"
	"strings"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	helper "painel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type RevalidateController struct {
	Inv cache.Invalidator
}

func NewRevalidateController(inv cache.Invalidator) *RevalidateController {
	return &RevalidateController{Inv: inv}
}

// queryAll collects every non-blank value of a repeatable query key.
func queryAll(c *fiber.Ctx, key string) []string {
	out := []string{}
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		if string(k) != key {
			return
		}
		if s := strings.TrimSpace(string(v)); s != "" {
			out = append(out, s)
		}
	})
	return out
}

// POST /api/a/revalidate?tag=posts&tag=dashboard&path=/api/public/posts
func (h *RevalidateController) Revalidate(c *fiber.Ctx) error {
	tags := queryAll(c, "tag")
	paths := queryAll(c, "path")
	if len(tags) == 0 && len(paths) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "informe ao menos uma tag ou path")
	}
	for _, t := range tags {
		if !constants.IsCacheTag(t) {
			return helper.JsonError(c, fiber.StatusBadRequest, "tag desconhecida: "+t)
		}
	}
	for _, p := range paths {
		if !cache.ValidPath(p) {
			return helper.JsonError(c, fiber.StatusBadRequest, "path inválido (use /caminho, sem ? ou #): "+p)
		}
	}

	if err := h.Inv.Trigger(tags, paths); err != nil {
		log.Printf("[ERROR] revalidate %v %v: %v", tags, paths, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	log.Printf("[INFO] revalidated tags=%v paths=%v", tags, paths)
	return c.JSON(fiber.Map{
		"success": true,
		"revalidated": fiber.Map{
			"tags":  tags,
			"paths": paths,
		},
	})
}
