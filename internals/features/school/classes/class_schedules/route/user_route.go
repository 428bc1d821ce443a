// file: internals/features/school/classes/class_schedules/route/user_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "schoolku_backend/internals/features/school/classes/class_schedules/controller"
	"schoolku_backend/internals/features/school/classes/class_schedules/repository"
)

type Deps struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Generator ctl.LessonGenerator
	Cache     *repository.HolidayCache
}

// LessonScheduleUserRoutes: read-only (jadwal kelas + kalender libur)
func LessonScheduleUserRoutes(user fiber.Router, deps Deps) {
	lessons := ctl.NewLessonList(deps.DB, deps.Validate)
	holidays := ctl.NewHoliday(deps.DB, deps.Validate, deps.Cache)

	// GET /api/u/semesters/:semester_id/classes/:class_id/lessons
	user.Get("/semesters/:semester_id/classes/:class_id/lessons", lessons.List)

	// GET /api/u/holidays?semester_id&is_active&date_from&date_to
	user.Get("/holidays", holidays.List)
}
