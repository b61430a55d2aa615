package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PoloModel struct {
	PoloID        uuid.UUID `gorm:"column:polo_id;type:uuid;primaryKey" json:"polo_id"`
	PoloSlug      string    `gorm:"column:polo_slug;type:varchar(160);not null;uniqueIndex" json:"polo_slug"`
	PoloName      string    `gorm:"column:polo_name;type:varchar(150);not null" json:"polo_name"`
	PoloAddress   *string   `gorm:"column:polo_address;type:varchar(255)" json:"polo_address"`
	PoloCity      *string   `gorm:"column:polo_city;type:varchar(120)" json:"polo_city"`
	PoloState     *string   `gorm:"column:polo_state;type:char(2);index" json:"polo_state"`
	PoloZip       *string   `gorm:"column:polo_zip;type:varchar(10)" json:"polo_zip"`
	PoloPhone     *string   `gorm:"column:polo_phone;type:varchar(30)" json:"polo_phone"`
	PoloEmail     *string   `gorm:"column:polo_email;type:varchar(255)" json:"polo_email"`
	PoloWhatsapp  *string   `gorm:"column:polo_whatsapp;type:varchar(30)" json:"polo_whatsapp"`
	PoloMapsURL   *string   `gorm:"column:polo_maps_url;type:text" json:"polo_maps_url"`
	PoloCreatedAt time.Time `gorm:"column:polo_created_at;autoCreateTime" json:"polo_created_at"`
	PoloUpdatedAt time.Time `gorm:"column:polo_updated_at;autoUpdateTime" json:"polo_updated_at"`
}

func (PoloModel) TableName() string {
	return "polos"
}

func (m *PoloModel) BeforeCreate(tx *gorm.DB) error {
	if m.PoloID == uuid.Nil {
		m.PoloID = uuid.New()
	}
	return nil
}
