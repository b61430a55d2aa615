package seeds

import (
	"context"
	"testing"

	"painel_backend/internals/constants"
	categoriaModel "painel_backend/internals/features/home/categorias/model"
	settingModel "painel_backend/internals/features/home/settings/model"
	userModel "painel_backend/internals/features/users/user/model"
	categorias "painel_backend/internals/seeds/home/categorias"
	"painel_backend/internals/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", " Admin@Painel.test ")
	t.Setenv("ADMIN_PASSWORD", "troque-esta-senha")
	t.Setenv("SEED_USERS_FILE", "")
	db := testutil.OpenDB(t, &categoriaModel.CategoriaModel{}, &settingModel.SettingModel{})

	require.NoError(t, RunAllSeeds(context.Background(), db))

	var admin userModel.UserModel
	require.NoError(t, db.First(&admin, "email = ?", "admin@painel.test").Error)
	assert.Equal(t, constants.RoleAdmin, admin.Role)
	assert.Equal(t, constants.StatusActive, admin.Status)

	var s settingModel.SettingModel
	require.NoError(t, db.First(&s, "setting_id = ?", settingModel.SingletonID).Error)
	s.SettingValues["site_title"] = "Faculdade X"
	require.NoError(t, db.Save(&s).Error)

	require.NoError(t, RunAllSeeds(context.Background(), db))

	var users, cats int64
	db.Model(&userModel.UserModel{}).Count(&users)
	db.Model(&categoriaModel.CategoriaModel{}).Count(&cats)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, len(categorias.Defaults), cats)

	require.NoError(t, db.First(&s, "setting_id = ?", settingModel.SingletonID).Error)
	assert.Equal(t, "Faculdade X", s.SettingValues["site_title"], "stored values win over defaults")
}

func TestRunAllSeedsNeedsAdminEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")
	db := testutil.OpenDB(t, &categoriaModel.CategoriaModel{}, &settingModel.SettingModel{})
	assert.Error(t, RunAllSeeds(context.Background(), db))
}
