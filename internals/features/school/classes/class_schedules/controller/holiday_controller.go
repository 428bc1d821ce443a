// file: internals/features/school/classes/class_schedules/controller/holiday_controller.go
package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"

	d "schoolku_backend/internals/features/school/classes/class_schedules/dto"
	m "schoolku_backend/internals/features/school/classes/class_schedules/model"
)

// HolidayInvalidator: dipanggil setiap kalender libur berubah (cache Redis).
type HolidayInvalidator interface {
	Invalidate(ctx context.Context) error
}

/* =========================
   Controller & Constructor
   ========================= */

type HolidayController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    HolidayInvalidator
}

func NewHoliday(db *gorm.DB, v *validator.Validate, cache HolidayInvalidator) *HolidayController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &HolidayController{DB: db, Validate: v, Cache: cache}
}

func (ctl *HolidayController) invalidate(ctx context.Context) {
	if ctl.Cache == nil {
		return
	}
	if err := ctl.Cache.Invalidate(ctx); err != nil {
		log.Warnf("[HolidayCache] invalidate gagal: %v", err)
	}
}

/* =========================
   Create  (ADMIN)
   ========================= */

func (ctl *HolidayController) Create(c *fiber.Ctx) error {
	var req d.HolidayCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFields(err))
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	ctl.invalidate(c.UserContext())

	return helper.JsonCreated(c, "Holiday created", d.FromHolidayModel(row))
}

/* =========================
   Delete (soft)  (ADMIN)
   ========================= */

func (ctl *HolidayController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.HolidayModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("holiday_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "holiday not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	ctl.invalidate(c.UserContext())

	return helper.JsonDeleted(c, "Holiday deleted", fiber.Map{"holiday_id": id})
}

/* =========================
   List  (USER)
   ========================= */

func (ctl *HolidayController) List(c *fiber.Ctx) error {
	var q d.HolidayListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFields(err))
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.HolidayModel{})

	// semester_id: global + khusus semester itu
	if q.SemesterID != nil {
		tx = tx.Where("(holiday_semester_id IS NULL OR holiday_semester_id = ?)", *q.SemesterID)
	}
	if q.IsActive != nil {
		tx = tx.Where("holiday_is_active = ?", *q.IsActive)
	}
	if q.IsRecurring != nil {
		tx = tx.Where("holiday_is_recurring_yearly = ?", *q.IsRecurring)
	}

	// overlap: end >= from AND start <= to
	if q.DateFrom != nil && strings.TrimSpace(*q.DateFrom) != "" {
		tx = tx.Where("holiday_end_date >= ?", strings.TrimSpace(*q.DateFrom))
	}
	if q.DateTo != nil && strings.TrimSpace(*q.DateTo) != "" {
		tx = tx.Where("holiday_start_date <= ?", strings.TrimSpace(*q.DateTo))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.ResolvePaging(c, 50, 500)
	var rows []m.HolidayModel
	if err := tx.Order("holiday_start_date ASC, holiday_id ASC").
		Limit(p.PerPage).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "OK", d.FromHolidayModels(rows), &pg)
}
