package cache

import (
	"errors"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRememberComputesOnceUntilRevalidated(t *testing.T) {
	s := NewTagStore()
	var calls int32
	fn := func() (int, error) { return int(atomic.AddInt32(&calls, 1)), nil }

	v, err := Remember(s, "dashboard:summary", []string{"dashboard"}, fn)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = Remember(s, "dashboard:summary", []string{"dashboard"}, fn)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "second call is served from cache")

	require.NoError(t, s.RevalidateTag("dashboard"))
	v, err = Remember(s, "dashboard:summary", []string{"dashboard"}, fn)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestRememberDoesNotCacheErrors(t *testing.T) {
	s := NewTagStore()
	boom := errors.New("boom")

	_, err := Remember(s, "k", []string{"posts"}, func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())
}

func TestRevalidateDuringComputeSkipsStore(t *testing.T) {
	s := NewTagStore()
	_, err := Remember(s, "k", []string{"posts"}, func() (string, error) {
		require.NoError(t, s.RevalidateTag("posts"))
		return "stale", nil
	})
	require.NoError(t, err)
	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestRevalidateUnknownTag(t *testing.T) {
	assert.ErrorIs(t, NewTagStore().RevalidateTag("nope"), ErrUnknownTag)
}

func TestPathStorageRevalidatePath(t *testing.T) {
	p := NewPathStorage()
	require.NoError(t, p.Set("/api/public/posts?_GET", []byte("a"), 0))
	require.NoError(t, p.Set("/api/public/posts?page=2_GET", []byte("b"), 0))
	require.NoError(t, p.Set("/api/public/posts/intro?_GET", []byte("c"), 0))
	require.NoError(t, p.Set("/api/public/postsx?_GET", []byte("d"), 0))
	require.NoError(t, p.Set("/api/public/cursos?_GET", []byte("e"), 0))

	require.NoError(t, p.RevalidatePath("/api/public/posts/"))
	assert.Equal(t, 2, p.Len())

	v, err := p.Get("/api/public/postsx?_GET")
	require.NoError(t, err)
	assert.Equal(t, []byte("d"), v)

	assert.ErrorIs(t, p.RevalidatePath("api/public"), ErrInvalidPath)
	assert.ErrorIs(t, p.RevalidatePath(""), ErrInvalidPath)
}

func TestValidPath(t *testing.T) {
	for path, want := range map[string]bool{
		"/api/public/posts":        true,
		"/api/public/posts/":       true,
		" /api/public/cursos ":     true,
		"api/public/posts":         false,
		"/":                        false,
		"":                         false,
		"/api/public/posts?page=2": false,
		"/api/public/posts#topo":   false,
	} {
		assert.Equal(t, want, ValidPath(path), path)
		if !want {
			assert.ErrorIs(t, NewPathStorage().RevalidatePath(path), ErrInvalidPath, path)
		}
	}
}

func TestCacheKeyOutlivesRequest(t *testing.T) {
	var keys []string
	app := fiber.New()
	app.Get("/api/public/*", func(c *fiber.Ctx) error {
		keys = append(keys, CacheKey(c))
		return c.SendStatus(fiber.StatusNoContent)
	})
	for _, target := range []string{"/api/public/posts?page=2", "/api/public/cursos"} {
		_, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"/api/public/posts?page=2", "/api/public/cursos?"}, keys)
}

func TestTriggerStopsAtFirstError(t *testing.T) {
	r := NewRevalidator()
	var calls int32
	fn := func() (int32, error) { return atomic.AddInt32(&calls, 1), nil }
	_, _ = Remember(r.Tags, "cursos:list", []string{"cursos"}, fn)
	require.NoError(t, r.Pages.Set("/api/public/cursos?_GET", []byte("x"), 0))

	err := r.Trigger([]string{"posts", "bogus", "cursos"}, []string{"/api/public/cursos"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTag)

	_, ok := r.Tags.Get("cursos:list")
	assert.True(t, ok, "tags after the failing one are untouched")
	assert.Equal(t, 1, r.Pages.Len(), "paths are not processed after a tag error")

	require.NoError(t, r.Trigger([]string{"cursos"}, []string{"/api/public/cursos"}))
	assert.Equal(t, 0, r.Tags.Len())
	assert.Equal(t, 0, r.Pages.Len())
}

type failingInvalidator struct{ called bool }

func (f *failingInvalidator) Trigger(tags, paths []string) error {
	f.called = true
	return errors.New("falhou")
}

func TestTouchSwallowsErrors(t *testing.T) {
	f := &failingInvalidator{}
	Touch(f, []string{"posts"})
	assert.True(t, f.called)
	Touch(nil, []string{"posts"})
}
