package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"painel_backend/internals/helpers/dbtime"

	"github.com/bytedance/sonic"
)

const DefaultBatchSize = 1000

// Source is where rows come from; PgSource reads Postgres.
type Source interface {
	Tables(ctx context.Context) ([]string, error)
	Page(ctx context.Context, table string, offset, limit int) ([]json.RawMessage, error)
}

// Snapshot is the file layout: every table's rows plus the tables that failed.
type Snapshot struct {
	CreatedAt time.Time                    `json:"created_at"`
	Tables    map[string][]json.RawMessage `json:"tables"`
	Errors    map[string]string            `json:"errors"`
}

type BackupService struct {
	Src       Source
	Dir       string
	BatchSize int
	Now       func() time.Time
}

func NewBackupService(src Source, dir string) *BackupService {
	if dir == "" {
		dir = "backups"
	}
	return &BackupService{Src: src, Dir: dir, BatchSize: DefaultBatchSize, Now: dbtime.NowUTC}
}

// Run dumps every table and writes <Dir>/backup-YYYYMMDD-HHMMSS.json.
// A table that fails is recorded in Errors and left out of Tables.
func (s *BackupService) Run(ctx context.Context) (string, *Snapshot, error) {
	now := s.Now()
	tables, err := s.Src.Tables(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("listar tabelas: %w", err)
	}

	snap := &Snapshot{
		CreatedAt: now,
		Tables:    make(map[string][]json.RawMessage, len(tables)),
		Errors:    map[string]string{},
	}
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}
		rows, err := s.dumpTable(ctx, t)
		if err != nil {
			log.Printf("[WARN] backup: tabela %s ignorada: %v", t, err)
			snap.Errors[t] = err.Error()
			continue
		}
		snap.Tables[t] = rows
		log.Printf("[INFO] backup: %s (%d linhas)", t, len(rows))
	}

	path, err := s.write(snap, now)
	if err != nil {
		return "", nil, err
	}
	return path, snap, nil
}

func (s *BackupService) dumpTable(ctx context.Context, table string) ([]json.RawMessage, error) {
	batch := s.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	out := []json.RawMessage{}
	for offset := 0; ; offset += batch {
		page, err := s.Src.Page(ctx, table, offset, batch)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < batch {
			return out, nil
		}
	}
}

// write goes through a temp file so a crash never leaves a truncated snapshot.
func (s *BackupService) write(snap *Snapshot, now time.Time) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	raw, err := sonic.ConfigStd.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, "backup-"+dbtime.Stamp(now)+".json")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return path, nil
}
