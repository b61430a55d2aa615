package model

import (
	"time"

	"gorm.io/datatypes"
)

// SingletonID is the only row the settings table ever holds.
const SingletonID = 1

type SettingModel struct {
	SettingID        int               `gorm:"column:setting_id;primaryKey;autoIncrement:false" json:"id"`
	SettingValues    datatypes.JSONMap `gorm:"column:setting_values;type:jsonb;not null" json:"values"`
	SettingUpdatedAt time.Time         `gorm:"column:setting_updated_at;autoUpdateTime" json:"updated_at"`
}

func (SettingModel) TableName() string { return "settings" }
