package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	ctl "schoolku_backend/internals/features/school/academics/time_slots/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func TimeSlotAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.NewTimeSlotController(db, v)
	g := admin.Group("/time-slots", authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("slot jam"), constants.AdminAndAbove))
	g.Post("/", h.Create)
}

func TimeSlotUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.NewTimeSlotController(db, v)
	user.Get("/time-slots", h.List)
}
