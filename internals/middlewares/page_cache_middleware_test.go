package middlewares

import (
	"net/http/httptest"
	"testing"

	appCache "painel_backend/internals/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCacheServesUntilPathRevalidated(t *testing.T) {
	rv := appCache.NewRevalidator()
	hits := 0

	app := fiber.New()
	app.Use(PageCache(rv.Pages))
	app.Get("/api/public/posts", func(c *fiber.Ctx) error {
		hits++
		return c.JSON(fiber.Map{"hits": hits})
	})

	get := func() string {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/public/posts", nil), -1)
		require.NoError(t, err)
		return resp.Header.Get("X-Cache")
	}

	assert.Equal(t, "miss", get())
	assert.Equal(t, "hit", get())
	assert.Equal(t, 1, hits)
	assert.Greater(t, rv.Pages.Len(), 0)

	require.NoError(t, rv.Trigger(nil, []string{"/api/public/posts"}))
	assert.Equal(t, 0, rv.Pages.Len())
	assert.Equal(t, "miss", get())
	assert.Equal(t, 2, hits)
}

func TestPageCacheBypass(t *testing.T) {
	rv := appCache.NewRevalidator()
	app := fiber.New()
	app.Use(PageCache(rv.Pages))
	app.Get("/x", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/x?nocache=1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "unreachable", resp.Header.Get("X-Cache"))
	assert.Equal(t, 0, rv.Pages.Len())
}

func TestPageCacheSkipPrefixes(t *testing.T) {
	rv := appCache.NewRevalidator()
	app := fiber.New()
	app.Use(PageCache(rv.Pages, "/api/public/ouvidoria"))
	app.Get("/api/public/ouvidoria", func(c *fiber.Ctx) error { return c.SendString("status") })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/public/ouvidoria?protocolo=OUV-1", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, "unreachable", resp.Header.Get("X-Cache"))
	}
	assert.Equal(t, 0, rv.Pages.Len())
}

func TestPageCacheDoesNotStoreErrors(t *testing.T) {
	rv := appCache.NewRevalidator()
	calls := 0

	app := fiber.New()
	app.Use(PageCache(rv.Pages))
	app.Get("/api/public/posts", func(c *fiber.Ctx) error {
		calls++
		if calls == 1 {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
		}
		return c.JSON(fiber.Map{"success": true})
	})

	get := func() (int, string) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/public/posts", nil), -1)
		require.NoError(t, err)
		return resp.StatusCode, resp.Header.Get("X-Cache")
	}

	status, xc := get()
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "unreachable", xc)
	assert.Equal(t, 0, rv.Pages.Len())

	status, xc = get()
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "miss", xc)

	status, xc = get()
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "hit", xc)
	assert.Equal(t, 2, calls)
}

func TestPageCacheDoesNotStoreNotFound(t *testing.T) {
	rv := appCache.NewRevalidator()
	app := fiber.New()
	app.Use(PageCache(rv.Pages))
	app.Get("/api/public/polos", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false})
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/public/polos?slug=nada", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.NotEqual(t, "hit", resp.Header.Get("X-Cache"))
	}
	assert.Equal(t, 0, rv.Pages.Len())
}
