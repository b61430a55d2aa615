package settings

import (
	"context"

	"painel_backend/internals/features/home/settings/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var Defaults = datatypes.JSONMap{
	"site_title":       "Painel",
	"contato_email":    "",
	"contato_telefone": "",
}

// SeedSettings makes sure the singleton row exists; stored values win.
func SeedSettings(ctx context.Context, db *gorm.DB) error {
	row := model.SettingModel{SettingID: model.SingletonID, SettingValues: datatypes.JSONMap{}}
	for k, v := range Defaults {
		row.SettingValues[k] = v
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "setting_id"}}, DoNothing: true}).
		Create(&row).Error
}
