package helper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify mengubah teks bebas jadi slug [a-z0-9-]: lowercase, diacritics
// stripped (é → e), runs of anything else collapsed into one "-".
// Returns "" when nothing usable is left.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = reNonAlnum.ReplaceAllString(b.String(), "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > maxLen {
		s = strings.Trim(string([]rune(s)[:maxLen]), "-")
	}
	return s
}

// SlugOrRandom slugifies s and, when the result is empty, falls back to
// prefix plus a short random suffix ("polo-3f9a2c1d").
func SlugOrRandom(prefix, s string) string {
	if slug := Slugify(s, DefaultSlugMaxLen); slug != "" {
		return slug
	}
	if prefix == "" {
		prefix = "item"
	}
	return prefix + randomSuffix()
}

func randomSuffix() string {
	return "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// EnsureUniqueSlugCI memastikan slug unik (case-insensitive) di satu tabel/kolom.
// scopeFn boleh nil; dipakai untuk menambah WHERE (mis. exclude row sendiri saat update).
// Suffixes "-2" ... "-26" are tried first, then a random suffix.
func EnsureUniqueSlugCI(
	ctx context.Context,
	db *gorm.DB,
	table string,
	column string,
	baseSlug string,
	scopeFn func(*gorm.DB) *gorm.DB,
	maxLen int,
) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	slug := baseSlug

	for i := 0; i < 25; i++ {
		taken, err := slugTaken(ctx, db, table, column, slug, scopeFn)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		suffix := fmt.Sprintf("-%d", i+2)
		slug = trimForSuffix(baseSlug, suffix, maxLen) + suffix
	}

	r := randomSuffix()
	return trimForSuffix(baseSlug, r, maxLen) + r, nil
}

func slugTaken(ctx context.Context, db *gorm.DB, table, column, slug string, scopeFn func(*gorm.DB) *gorm.DB) (bool, error) {
	q := db.WithContext(ctx).Table(table)
	if scopeFn != nil {
		q = scopeFn(q)
	}
	var count int64
	if err := q.Where(fmt.Sprintf("LOWER(%s) = ?", column), strings.ToLower(slug)).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// trimForSuffix memotong base agar base+suffix <= maxLen, lalu trim '-' di ujung.
func trimForSuffix(base, suffix string, maxLen int) string {
	need := len(suffix)
	if need >= maxLen {
		return "x"
	}
	rs := []rune(base)
	if keep := maxLen - need; len(rs) > keep {
		rs = rs[:keep]
	}
	out := strings.Trim(string(rs), "-")
	if out == "" {
		out = "x"
	}
	return out
}

// ResolveSlug is the shared create/update slug rule:
//   - explicit slug: normalized, must not belong to another row (ErrSlugTaken)
//   - no slug and current != "": keep current
//   - otherwise derived from source and de-duplicated with suffixes
func ResolveSlug(
	ctx context.Context,
	db *gorm.DB,
	table, column string,
	explicit, source, current, prefix string,
	scopeFn func(*gorm.DB) *gorm.DB,
) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		slug := SlugOrRandom(prefix, explicit)
		if current != "" && strings.EqualFold(slug, current) {
			return slug, nil
		}
		taken, err := slugTaken(ctx, db, table, column, slug, scopeFn)
		if err != nil {
			return "", err
		}
		if taken {
			return "", ErrSlugTaken
		}
		return slug, nil
	}
	if current != "" {
		return current, nil
	}
	return EnsureUniqueSlugCI(ctx, db, table, column, SlugOrRandom(prefix, source), scopeFn, DefaultSlugMaxLen)
}
