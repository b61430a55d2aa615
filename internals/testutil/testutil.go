// Package testutil holds the fixtures shared by handler tests: an in-memory
// SQLite database, seeded users and request helpers around fiber's app.Test.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authService "painel_backend/internals/features/users/auth/service"
	userModel "painel_backend/internals/features/users/user/model"
	helper "painel_backend/internals/helpers"
	authMiddleware "painel_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	AccessSecret  = "test-access-secret"
	RefreshSecret = "test-refresh-secret"
)

// OpenDB returns a fresh in-memory database with models migrated.
// The users table is always present.
func OpenDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(append([]any{&userModel.UserModel{}}, models...)...))
	return db
}

// NewApp mirrors the production fiber config that matters for tests.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
}

// Gate is the production authorization gate wired to the test secret.
func Gate(db *gorm.DB) fiber.Handler {
	return authMiddleware.Gate(authMiddleware.GateOpts{
		Codec:    AccessCodec(),
		Profiles: authService.NewProfileResolver(db),
	})
}

// AdminApp returns an app with an /api/a group behind the gate.
func AdminApp(db *gorm.DB) (*fiber.App, fiber.Router) {
	app := NewApp()
	return app, app.Group("/api/a", Gate(db))
}

// CreateUser inserts a user with password "senha-forte-123".
func CreateUser(t *testing.T, db *gorm.DB, email, role, status string) userModel.UserModel {
	t.Helper()
	hash, err := authService.HashPassword("senha-forte-123")
	require.NoError(t, err)
	u := userModel.UserModel{
		UserName: "Usuário " + role,
		Email:    email,
		Password: hash,
		Role:     role,
		Status:   status,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func AccessCodec() *authService.TokenCodec {
	return authService.NewAccessCodec(AccessSecret, time.Hour)
}

// AccessCookie returns a Cookie header value for u.
func AccessCookie(t *testing.T, u userModel.UserModel) string {
	t.Helper()
	tok, _, err := AccessCodec().Issue(u.ID, u.Role)
	require.NoError(t, err)
	return helper.AccessTokenCookie + "=" + tok
}

// Response is a decoded JSON envelope.
type Response struct {
	Status int
	Body   map[string]any
	Header http.Header
}

func (r Response) Data() map[string]any {
	d, _ := r.Body["data"].(map[string]any)
	return d
}

func (r Response) DataList() []any {
	d, _ := r.Body["data"].([]any)
	return d
}

// Do sends a JSON request (body may be nil) with an optional cookie header.
func Do(t *testing.T, app *fiber.App, method, path string, body any, cookie string) Response {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := Response{Status: resp.StatusCode, Header: resp.Header, Body: map[string]any{}}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out.Body)
	}
	return out
}
