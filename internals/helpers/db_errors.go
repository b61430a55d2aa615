package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrSlugTaken = errors.New("slug já está em uso")

// IsUniqueViolation recognizes duplicate-key errors from Postgres (23505,
// through pgx or lib/pq) and the SQLite driver used in tests.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint") || strings.Contains(low, "duplicate key")
}

// DBError answers a write error: 409 for duplicates, 500 otherwise.
func DBError(c *fiber.Ctx, err error, conflictMsg string) error {
	if errors.Is(err, ErrSlugTaken) || IsUniqueViolation(err) {
		if conflictMsg == "" {
			conflictMsg = ErrSlugTaken.Error()
		}
		return JsonError(c, fiber.StatusConflict, conflictMsg)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// FindError answers a lookup error: 404 for missing rows, 500 otherwise.
func FindError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
