// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultSchoolTimezone = "Asia/Jakarta"
	LocSchoolLoc          = "school_loc" // *time.Location, diisi middleware
)

// LoadSchoolLocation: nama IANA → *time.Location.
// Gagal load (tzdata tidak ada) → fixed WIB (+07:00).
func LoadSchoolLocation(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSchoolTimezone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone(DefaultSchoolTimezone, 7*3600)
}

// GetSchoolLocation: dari locals, fallback Asia/Jakarta.
func GetSchoolLocation(c *fiber.Ctx) *time.Location {
	if c != nil {
		if loc, ok := c.Locals(LocSchoolLoc).(*time.Location); ok && loc != nil {
			return loc
		}
	}
	return LoadSchoolLocation("")
}

// CombineDateAndTod: tanggal sipil + jam dinding di loc → instant UTC.
func CombineDateAndTod(date time.Time, tod Tod, loc *time.Location) time.Time {
	local := time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
	return local.UTC()
}

// ToSchoolTime mengonversi waktu (biasanya dari DB = UTC) ke timezone sekolah.
func ToSchoolTime(c *fiber.Ctx, t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(GetSchoolLocation(c))
}
