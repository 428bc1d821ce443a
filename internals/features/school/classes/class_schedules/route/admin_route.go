// file: internals/features/school/classes/class_schedules/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	ctl "schoolku_backend/internals/features/school/classes/class_schedules/controller"
	"schoolku_backend/internals/constants"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// LessonScheduleAdminRoutes: generate/preview jadwal + kelola kalender libur
func LessonScheduleAdminRoutes(admin fiber.Router, deps Deps) {
	sched := ctl.NewLessonSchedule(deps.Generator, deps.Validate)
	holidays := ctl.NewHoliday(deps.DB, deps.Validate, deps.Cache)

	// POST /api/a/lesson-schedules/generate | /preview
	grpSched := admin.Group("/lesson-schedules",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("generate jadwal"), constants.TeacherAndAbove),
	)
	grpSched.Post("/generate", sched.Generate)
	grpSched.Post("/preview", sched.Preview)

	grpHoliday := admin.Group("/holidays",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("kalender libur"), constants.AdminAndAbove),
	)
	grpHoliday.Post("/", holidays.Create)
	grpHoliday.Delete("/:id", holidays.Delete)
}
