package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	ctl "schoolku_backend/internals/features/school/academics/semesters/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func SemesterAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.NewSemesterController(db, v)
	g := admin.Group("/semesters", authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("semester"), constants.AdminAndAbove))
	g.Post("/", h.Create)
}

func SemesterUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.NewSemesterController(db, v)
	g := user.Group("/semesters")
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
}
