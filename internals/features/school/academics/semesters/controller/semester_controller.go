package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/academics/semesters/dto"
	m "schoolku_backend/internals/features/school/academics/semesters/model"
	helper "schoolku_backend/internals/helpers"
)

type SemesterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSemesterController(db *gorm.DB, v *validator.Validate) *SemesterController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &SemesterController{DB: db, Validate: v}
}

// POST /api/a/semesters
func (ctl *SemesterController) Create(c *fiber.Ctx) error {
	var req d.SemesterCreateRequest
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
	return helper.JsonCreated(c, "Semester created", d.FromModel(row))
}

// GET /api/u/semesters?is_active&page&per_page
func (ctl *SemesterController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.SemesterModel{})
	if v := c.Query("is_active"); v != "" {
		tx = tx.Where("semester_is_active = ?", c.QueryBool("is_active"))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)
	var rows []m.SemesterModel
	if err := tx.Order("semester_start_date DESC, semester_id DESC").
		Limit(p.PerPage).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "OK", d.FromModels(rows), &pg)
}

// GET /api/u/semesters/:id
func (ctl *SemesterController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var row m.SemesterModel
	if err := ctl.DB.WithContext(c.UserContext()).Where("semester_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "semester not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.FromModel(row))
}
