package controller

import (
	"context"
	"strings"

	"painel_backend/internals/cache"
	"painel_backend/internals/constants"
	"painel_backend/internals/features/home/settings/dto"
	"painel_backend/internals/features/home/settings/model"
	helper "painel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingController struct {
	DB  *gorm.DB
	Inv cache.Invalidator
}

func NewSettingController(db *gorm.DB, inv cache.Invalidator) *SettingController {
	return &SettingController{DB: db, Inv: inv}
}

func (ctrl *SettingController) touch() {
	cache.Touch(ctrl.Inv, []string{constants.TagSettings}, constants.PathPublicSettings)
}

// Load returns the singleton row, or an empty map when it was never seeded.
func Load(ctx context.Context, db *gorm.DB) (model.SettingModel, error) {
	row := model.SettingModel{SettingID: model.SingletonID, SettingValues: datatypes.JSONMap{}}
	err := db.WithContext(ctx).Where("setting_id = ?", model.SingletonID).Limit(1).Find(&row).Error
	if row.SettingValues == nil {
		row.SettingValues = datatypes.JSONMap{}
	}
	return row, err
}

// mutate runs a read-modify-write of the values map inside one transaction.
func (ctrl *SettingController) mutate(ctx context.Context, fn func(values datatypes.JSONMap)) (model.SettingModel, error) {
	var out model.SettingModel
	err := ctrl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := model.SettingModel{SettingID: model.SingletonID}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("setting_id = ?", model.SingletonID).Limit(1).Find(&row).Error; err != nil {
			return err
		}
		if row.SettingValues == nil {
			row.SettingValues = datatypes.JSONMap{}
		}
		fn(row.SettingValues)
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		out = row
		return nil
	})
	return out, err
}

// GET /settings → whole map
func (ctrl *SettingController) GetSettings(c *fiber.Ctx) error {
	row, err := Load(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if key := strings.TrimSpace(c.Query("key")); key != "" {
		v, ok := row.SettingValues[key]
		if !ok {
			return helper.JsonError(c, fiber.StatusNotFound, "Configuração não encontrada")
		}
		return helper.JsonOK(c, "ok", fiber.Map{"key": key, "value": v})
	}
	return helper.JsonOK(c, "ok", dto.ToSettingsDTO(row))
}

// PATCH /settings {key, value}
func (ctrl *SettingController) SetSetting(c *fiber.Ctx) error {
	var body dto.SetSettingRequest
	if handled, err := helper.BindAndValidate(c, &body); handled {
		return err
	}
	row, err := ctrl.mutate(c.UserContext(), func(values datatypes.JSONMap) {
		values[body.Key] = body.Value
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	ctrl.touch()
	return helper.JsonUpdated(c, "Configuração salva", dto.ToSettingsDTO(row))
}

// DELETE /settings?key=
func (ctrl *SettingController) DeleteSetting(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Query("key"))
	if key == "" || len(key) > 100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "key inválida")
	}
	found := false
	row, err := ctrl.mutate(c.UserContext(), func(values datatypes.JSONMap) {
		_, found = values[key]
		delete(values, key)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "Configuração não encontrada")
	}
	ctrl.touch()
	return helper.JsonDeleted(c, "Configuração removida", dto.ToSettingsDTO(row))
}
