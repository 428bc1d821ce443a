package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/academics/time_slots/dto"
	m "schoolku_backend/internals/features/school/academics/time_slots/model"
	helper "schoolku_backend/internals/helpers"
)

type TimeSlotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimeSlotController(db *gorm.DB, v *validator.Validate) *TimeSlotController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &TimeSlotController{DB: db, Validate: v}
}

// POST /api/a/time-slots
func (ctl *TimeSlotController) Create(c *fiber.Ctx) error {
	var req d.TimeSlotCreateRequest
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
	return helper.JsonCreated(c, "Time slot created", row)
}

// GET /api/u/time-slots (urut sort_order lalu jam mulai)
func (ctl *TimeSlotController) List(c *fiber.Ctx) error {
	var rows []m.TimeSlotModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("time_slot_sort_order ASC, time_slot_start_time ASC, time_slot_id ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "OK", rows, nil)
}
