// file: internals/features/school/classes/class_schedules/controller/lesson_list_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/dbtime"

	d "schoolku_backend/internals/features/school/classes/class_schedules/dto"
	m "schoolku_backend/internals/features/school/classes/class_schedules/model"
)

type LessonListController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLessonList(db *gorm.DB, v *validator.Validate) *LessonListController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &LessonListController{DB: db, Validate: v}
}

// GET /semesters/:semester_id/classes/:class_id/lessons?date_from&date_to&status&page&per_page
func (ctl *LessonListController) List(c *fiber.Ctx) error {
	semesterID, err := helper.ParseIDParam(c, "semester_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	classID, err := helper.ParseIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var q d.LessonListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFields(err))
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&m.LessonModel{}).
		Where("lesson_semester_id = ? AND lesson_class_id = ?", semesterID, classID)

	if q.DateFrom != nil && strings.TrimSpace(*q.DateFrom) != "" {
		tx = tx.Where("lesson_date >= ?", strings.TrimSpace(*q.DateFrom))
	}
	if q.DateTo != nil && strings.TrimSpace(*q.DateTo) != "" {
		tx = tx.Where("lesson_date <= ?", strings.TrimSpace(*q.DateTo))
	}
	if q.Status != nil && strings.TrimSpace(*q.Status) != "" {
		tx = tx.Where("lesson_status = ?", strings.TrimSpace(*q.Status))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 200)
	var rows []m.LessonModel
	if err := tx.
		Order("lesson_date ASC, lesson_starts_at ASC, lesson_id ASC").
		Limit(p.PerPage).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := d.FromLessonModels(rows)
	for i := range out {
		out[i].LessonStartsAt = dbtime.ToSchoolTime(c, out[i].LessonStartsAt)
		out[i].LessonEndsAt = dbtime.ToSchoolTime(c, out[i].LessonEndsAt)
	}

	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "OK", out, &pg)
}
