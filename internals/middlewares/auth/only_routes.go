package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// OnlyRolesSlice memungkinkan akses jika user memiliki salah satu dari role yang diizinkan.
func OnlyRolesSlice(message string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(helperAuth.LocRole).(string); !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Role not found")
		}
		if helperAuth.HasAnyRole(c, allowedRoles...) {
			return c.Next()
		}
		return helper.JsonError(c, fiber.StatusForbidden, message)
	}
}
