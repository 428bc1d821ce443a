// file: internals/helpers/auth/auth_locals.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Kunci c.Locals yang diisi middleware AuthJWT
const (
	LocUserID      = "user_id"
	LocRolesGlobal = "roles_global"
	LocRole        = "userRole"
)

// GetUserID: id user dari token ("" kalau tidak ada)
func GetUserID(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserID).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// GetRole: role efektif (hasil turunan roles_global), default "user"
func GetRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok && strings.TrimSpace(s) != "" {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return "user"
}

func GetRolesGlobal(c *fiber.Ctx) []string {
	if v, ok := c.Locals(LocRolesGlobal).([]string); ok {
		return v
	}
	return nil
}

// HasAnyRole cek role efektif maupun roles_global.
func HasAnyRole(c *fiber.Ctx, roles ...string) bool {
	want := map[string]struct{}{}
	for _, r := range roles {
		want[strings.ToLower(r)] = struct{}{}
	}
	if _, ok := want[GetRole(c)]; ok {
		return true
	}
	for _, r := range GetRolesGlobal(c) {
		if _, ok := want[strings.ToLower(r)]; ok {
			return true
		}
	}
	return false
}

// PickRole memilih role tertinggi: owner > admin > teacher > user.
func PickRole(roles []string) string {
	has := map[string]struct{}{}
	for _, r := range roles {
		r = strings.ToLower(strings.TrimSpace(r))
		if r != "" {
			has[r] = struct{}{}
		}
	}
	for _, w := range []string{"owner", "admin", "teacher", "user"} {
		if _, ok := has[w]; ok {
			return w
		}
	}
	return "user"
}
