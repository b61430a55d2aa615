package dto

import (
	"strings"
	"time"

	"painel_backend/internals/features/home/settings/model"
)

type SettingsDTO struct {
	Values    map[string]any `json:"values"`
	UpdatedAt *time.Time     `json:"updated_at"`
}

// SetSettingRequest writes one key; a null value stores JSON null.
type SetSettingRequest struct {
	Key   string `json:"key" validate:"required,min=1,max=100"`
	Value any    `json:"value"`
}

func (r *SetSettingRequest) Normalize() {
	r.Key = strings.TrimSpace(r.Key)
}

func ToSettingsDTO(m model.SettingModel) SettingsDTO {
	out := SettingsDTO{Values: map[string]any{}}
	for k, v := range m.SettingValues {
		out.Values[k] = v
	}
	if !m.SettingUpdatedAt.IsZero() {
		t := m.SettingUpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
