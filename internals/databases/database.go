package database

import (
	"context"
	"log"
	"sync"
	"time"

	"painel_backend/internals/configs"
	"painel_backend/internals/helpers/dbtime"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB     *gorm.DB
	dbOnce sync.Once
	dbErr  error
)

// GetDB opens the process-wide connection on first use.
func GetDB() (*gorm.DB, error) {
	dbOnce.Do(func() {
		DB, dbErr = open(configs.PostgresDSN())
	})
	return DB, dbErr
}

// ConnectDB is GetDB for main: a connection failure is fatal.
func ConnectDB() *gorm.DB {
	log.Println("[INFO] conectando ao PostgreSQL...")
	db, err := GetDB()
	if err != nil {
		log.Fatalf("[ERROR] falha ao conectar ao banco: %v", err)
	}
	TunePool()
	log.Println("[INFO] banco conectado")
	return db
}

func open(dsn string) (*gorm.DB, error) {
	// PreferSimpleProtocol keeps PgBouncer in transaction mode happy.
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:  configs.NewGormLogger(),
		NowFunc: dbtime.NowUTC,
	})
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUpQueries fills the pool shortly after boot.
func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := Ping(ctx, DB); err != nil {
			log.Printf("[WARN] warm-up ping: %v", err)
		}
	}()
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
