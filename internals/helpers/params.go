package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDQuery reads ?name=<uuid>; ok=false when the key is absent.
func ParseUUIDQuery(c *fiber.Ctx, name string) (id uuid.UUID, ok bool, err error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, err = uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, true, fiber.NewError(fiber.StatusBadRequest, name+" inválido")
	}
	return id, true, nil
}

// RequireUUIDQuery is ParseUUIDQuery for PATCH/DELETE, where the id is mandatory.
func RequireUUIDQuery(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, ok, err := ParseUUIDQuery(c, name)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" obrigatório")
	}
	return id, nil
}

// QueryBool parses ?key=true|false; ok=false when absent or unparsable.
func QueryBool(c *fiber.Ctx, key string) (val bool, ok bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return b, true
}

// QueryUUID parses an optional ?key=<uuid> filter.
func QueryUUID(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" inválido")
	}
	return &id, nil
}

// LikePattern builds a lowercase %q% pattern for LOWER(col) LIKE ?.
func LikePattern(q string) string {
	return "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
}

// StrPtr returns nil for blank strings.
func StrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// TrimPtr trims an optional string; blank becomes nil.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return StrPtr(*s)
}
