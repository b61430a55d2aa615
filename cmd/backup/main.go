// Command backup writes a JSON snapshot of every public table.
//
//	BACKUP_DATABASE_URL  service credential (falls back to the app DSN)
//	BACKUP_DIR           output directory (default "backups")
package main

import (
	"context"
	"log"
	"time"

	"painel_backend/internals/configs"
	backupService "painel_backend/internals/features/backup/service"
)

func main() {
	configs.LoadEnv()

	dsn := configs.GetEnv("BACKUP_DATABASE_URL")
	if dsn == "" {
		log.Println("[WARN] BACKUP_DATABASE_URL vazio, usando credenciais da aplicação")
		dsn = configs.PostgresDSN()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.GetEnvInt("BACKUP_TIMEOUT_MINUTES", 30))*time.Minute)
	defer cancel()

	src, err := backupService.OpenPg(ctx, dsn)
	if err != nil {
		log.Fatalf("[ERROR] backup: conexão: %v", err)
	}
	defer src.Close()

	svc := backupService.NewBackupService(src, configs.GetEnv("BACKUP_DIR", "backups"))
	svc.BatchSize = configs.GetEnvInt("BACKUP_BATCH_SIZE", backupService.DefaultBatchSize)

	path, snap, err := svc.Run(ctx)
	if err != nil {
		log.Fatalf("[ERROR] backup: %v", err)
	}
	log.Printf("[INFO] backup salvo em %s (%d tabelas, %d com erro)", path, len(snap.Tables), len(snap.Errors))
}
