// Command seed creates the first admin, the settings row and default categories.
package main

import (
	"context"
	"log"
	"time"

	"painel_backend/internals/configs"
	database "painel_backend/internals/databases"
	"painel_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	db := database.ConnectDB()
	defer database.Close()

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("[ERROR] seed: automigrate: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := seeds.RunAllSeeds(ctx, db); err != nil {
		log.Fatalf("[ERROR] seed: %v", err)
	}
}
