package seeds

import (
	"context"
	"log"

	"painel_backend/internals/configs"
	categorias "painel_backend/internals/seeds/home/categorias"
	settings "painel_backend/internals/seeds/home/settings"
	users "painel_backend/internals/seeds/users/auth"

	"gorm.io/gorm"
)

// RunAllSeeds is idempotent; each seeder skips what already exists.
func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	//* Admin
	if _, err := users.SeedAdmin(ctx, db, configs.GetEnv("ADMIN_EMAIL"), configs.GetEnv("ADMIN_PASSWORD")); err != nil {
		return err
	}
	if path := configs.GetEnv("SEED_USERS_FILE"); path != "" {
		if err := users.SeedUsersFromJSON(ctx, db, path); err != nil {
			return err
		}
	}

	//* Home
	if err := settings.SeedSettings(ctx, db); err != nil {
		return err
	}
	if _, err := categorias.SeedCategorias(ctx, db, categorias.Defaults); err != nil {
		return err
	}

	log.Println("[INFO] seed: concluído")
	return nil
}
