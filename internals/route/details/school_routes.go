package details

import (
	"github.com/gofiber/fiber/v2"

	roomRoutes "schoolku_backend/internals/features/school/academics/rooms/route"
	semesterRoutes "schoolku_backend/internals/features/school/academics/semesters/route"
	timeSlotRoutes "schoolku_backend/internals/features/school/academics/time_slots/route"
	scheduleRoutes "schoolku_backend/internals/features/school/classes/class_schedules/route"
	classRoutes "schoolku_backend/internals/features/school/classes/classes/route"
)

/* ===================== USER (read-only) ===================== */

func SchoolUserRoutes(user fiber.Router, deps scheduleRoutes.Deps) {
	semesterRoutes.SemesterUserRoutes(user, deps.DB, deps.Validate)
	roomRoutes.RoomsUserRoutes(user, deps.DB, deps.Validate)
	timeSlotRoutes.TimeSlotUserRoutes(user, deps.DB, deps.Validate)
	classRoutes.ClassUserRoutes(user, deps.DB, deps.Validate)
	scheduleRoutes.LessonScheduleUserRoutes(user, deps)
}

/* ===================== ADMIN ===================== */

func SchoolAdminRoutes(admin fiber.Router, deps scheduleRoutes.Deps) {
	semesterRoutes.SemesterAdminRoutes(admin, deps.DB, deps.Validate)
	roomRoutes.RoomsAdminRoutes(admin, deps.DB, deps.Validate)
	timeSlotRoutes.TimeSlotAdminRoutes(admin, deps.DB, deps.Validate)
	classRoutes.ClassAdminRoutes(admin, deps.DB, deps.Validate)
	scheduleRoutes.LessonScheduleAdminRoutes(admin, deps)
}
