package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

// PgSource pages rows as JSON with row_to_json, ordered by physical position.
type PgSource struct {
	DB     *sql.DB
	Schema string
}

// OpenPg connects with lib/pq; the caller closes the returned source.
func OpenPg(ctx context.Context, dsn string) (*PgSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PgSource{DB: db, Schema: "public"}, nil
}

func (p *PgSource) Close() error { return p.DB.Close() }

func (p *PgSource) schema() string {
	if p.Schema == "" {
		return "public"
	}
	return p.Schema
}

func (p *PgSource) Tables(ctx context.Context) ([]string, error) {
	rows, err := p.DB.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name`, p.schema())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (p *PgSource) Page(ctx context.Context, table string, offset, limit int) ([]json.RawMessage, error) {
	q := fmt.Sprintf(
		`SELECT row_to_json(t)::text FROM %s.%s AS t ORDER BY t.ctid LIMIT $1 OFFSET $2`,
		pq.QuoteIdentifier(p.schema()), pq.QuoteIdentifier(table),
	)
	rows, err := p.DB.QueryContext(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]json.RawMessage, 0, limit)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		out = append(out, json.RawMessage(raw))
	}
	return out, rows.Err()
}
