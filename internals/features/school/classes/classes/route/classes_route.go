package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	ctl "schoolku_backend/internals/features/school/classes/classes/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.NewClassController(db, v)
	g := admin.Group("/classes", authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("kelas"), constants.AdminAndAbove))
	g.Post("/", h.Create)
}

func ClassUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.NewClassController(db, v)
	user.Get("/classes", h.List)
}
