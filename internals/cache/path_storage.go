package cache

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

var ErrInvalidPath = errors.New("caminho inválido")

type pathEntry struct {
	val []byte
	exp time.Time
}

// PathStorage is the fiber.Storage behind the public response cache.
// Keys start with the request path, so a whole path can be dropped.
type PathStorage struct {
	mu    sync.RWMutex
	items map[string]pathEntry
}

var _ fiber.Storage = (*PathStorage)(nil)

func NewPathStorage() *PathStorage {
	return &PathStorage{items: map[string]pathEntry{}}
}

// CacheKey is the KeyGenerator for middleware/cache.
func CacheKey(c *fiber.Ctx) string {
	return utils.ImmutableString(c.Path()) + "?" + string(c.Request().URI().QueryString())
}

func (s *PathStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		_ = s.Delete(key)
		return nil, nil
	}
	return e.val, nil
}

func (s *PathStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	e := pathEntry{val: append([]byte(nil), val...)}
	if exp > 0 {
		e.exp = time.Now().Add(exp)
	}
	s.mu.Lock()
	s.items[key] = e
	s.mu.Unlock()
	return nil
}

func (s *PathStorage) Delete(key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

func (s *PathStorage) Reset() error {
	s.mu.Lock()
	s.items = map[string]pathEntry{}
	s.mu.Unlock()
	return nil
}

func (s *PathStorage) Close() error { return nil }

func (s *PathStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func normalizePath(path string) string {
	return strings.TrimRight(strings.TrimSpace(path), "/")
}

// ValidPath reports whether RevalidatePath accepts path: absolute, not the
// root, no query string or fragment.
func ValidPath(path string) bool {
	path = normalizePath(path)
	return path != "" && strings.HasPrefix(path, "/") && !strings.ContainsAny(path, "?#")
}

// RevalidatePath drops cached responses for path and everything below it.
func (s *PathStorage) RevalidatePath(path string) error {
	if !ValidPath(path) {
		return ErrInvalidPath
	}
	path = normalizePath(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.items {
		p := key
		if i := strings.IndexByte(key, '?'); i >= 0 {
			p = key[:i]
		}
		if p == path || strings.HasPrefix(p, path+"/") {
			delete(s.items, key)
		}
	}
	return nil
}
