package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	ctl "schoolku_backend/internals/features/school/academics/rooms/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func RoomsAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.NewRoomController(db, v)
	g := admin.Group("/rooms", authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("ruang kelas"), constants.AdminAndAbove))
	g.Post("/", h.Create)
}

func RoomsUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.NewRoomController(db, v)
	user.Get("/rooms", h.List)
}
