// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

const defaultTimezone = "America/Sao_Paulo"

var (
	locOnce sync.Once
	appLoc  *time.Location
)

// Location returns the display timezone (APP_TIMEZONE, default
// America/Sao_Paulo). Falls back to UTC when tzdata is missing.
func Location() *time.Location {
	locOnce.Do(func() {
		name := strings.TrimSpace(os.Getenv("APP_TIMEZONE"))
		if name == "" {
			name = defaultTimezone
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("[WARN] timezone %q indisponível, usando UTC: %v", name, err)
			loc = time.UTC
		}
		appLoc = loc
	})
	return appLoc
}

// NowUTC is what gets stored in the database.
func NowUTC() time.Time { return time.Now().UTC() }

// MonthsAgo returns the UTC instant n calendar months before now.
func MonthsAgo(now time.Time, n int) time.Time {
	return now.UTC().AddDate(0, -n, 0)
}

// ToLocal converts a stored (UTC) time for display.
func ToLocal(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Location())
}

// Stamp formats t in the local zone for file names (20261018-153000).
func Stamp(t time.Time) string {
	return ToLocal(t).Format("20060102-150405")
}
