// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const TodLayout = "15:04:05"

// Tod: jam dinding (kolom Postgres TIME), tanggal selalu 0000-01-01 UTC.
type Tod struct{ time.Time }

// From: ambil HH:mm:ss saja, buang tanggal & zona
func From(t time.Time) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
	}
}

// Parse: "HH:MM" atau "HH:MM:SS"
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

func (t Tod) String() string { return t.Format(TodLayout) }

// Scan: driver bisa kirim time.Time (dengan tanggal) atau string.
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = From(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		*t = Tod{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 {
		s += ":00"
	}
	tt, err := time.Parse(TodLayout, s)
	if err != nil {
		return err
	}
	*t = From(tt)
	return nil
}

func (t Tod) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return "00:00:00", nil
	}
	return t.Format(TodLayout), nil
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(t.Format(TodLayout))
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := sonic.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
