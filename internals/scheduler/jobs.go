package scheduler

import (
	"context"
	"log"
	"strings"
	"time"

	"painel_backend/internals/configs"
	backupService "painel_backend/internals/features/backup/service"
	authService "painel_backend/internals/features/users/auth/service"

	"gorm.io/gorm"
)

const DefaultTokenCleanupSpec = "0 3 * * *"

// TokenCleanupJob deletes refresh tokens past their expiry.
func TokenCleanupJob(auth *authService.AuthService) Job {
	spec := strings.TrimSpace(configs.GetEnv("CRON_TOKEN_CLEANUP"))
	if spec == "" {
		spec = DefaultTokenCleanupSpec
	}
	return Job{
		Name:    "refresh-token-cleanup",
		Spec:    spec,
		Timeout: time.Minute,
		Run: func(ctx context.Context) error {
			n, err := auth.CleanupExpired(ctx)
			if err == nil && n > 0 {
				log.Printf("[INFO] scheduler: %d refresh tokens expirados removidos", n)
			}
			return err
		},
	}
}

// BackupJob snapshots the app database on BACKUP_CRON; off when unset.
func BackupJob(db *gorm.DB) Job {
	return Job{
		Name:    "backup",
		Spec:    strings.TrimSpace(configs.GetEnv("BACKUP_CRON")),
		Timeout: 30 * time.Minute,
		Run: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			svc := backupService.NewBackupService(
				&backupService.PgSource{DB: sqlDB, Schema: "public"},
				configs.GetEnv("BACKUP_DIR", "backups"),
			)
			path, snap, err := svc.Run(ctx)
			if err != nil {
				return err
			}
			log.Printf("[INFO] scheduler: backup %s (%d tabelas, %d com erro)", path, len(snap.Tables), len(snap.Errors))
			return nil
		},
	}
}

// Start wires the panel's jobs and starts the cron.
func Start(db *gorm.DB, auth *authService.AuthService) (stop func()) {
	c, err := New(TokenCleanupJob(auth), BackupJob(db))
	if err != nil {
		log.Printf("[ERROR] scheduler: %v", err)
		return func() {}
	}
	c.Start()
	return func() { <-c.Stop().Done() }
}
