package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	semesterModel "schoolku_backend/internals/features/school/academics/semesters/model"
	d "schoolku_backend/internals/features/school/classes/classes/dto"
	m "schoolku_backend/internals/features/school/classes/classes/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ClassController{DB: db, Validate: v}
}

// POST /api/a/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req d.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFields(err))
	}

	row := req.ToModel()
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var sem semesterModel.SemesterModel
		if err := tx.Select("semester_id").Where("semester_id = ?", req.ClassSemesterID).First(&sem).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(http.StatusBadRequest, "semester tidak ditemukan")
			}
			return err
		}

		// slug unik per semester (case-insensitive)
		slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), tx, "classes", "class_slug",
			helper.Slugify(req.BaseSlug(), helper.DefaultSlugMaxLen),
			func(q *gorm.DB) *gorm.DB {
				return q.Where("class_semester_id = ? AND class_deleted_at IS NULL", req.ClassSemesterID)
			})
		if err != nil {
			return err
		}
		row.ClassSlug = slug
		return tx.Create(&row).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Class created", row)
}

// GET /api/u/classes?semester_id&page&per_page
func (ctl *ClassController) List(c *fiber.Ctx) error {
	semesterID, err := helper.ParseOptionalIDQuery(c, "semester_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.ClassModel{})
	if semesterID != nil {
		tx = tx.Where("class_semester_id = ?", *semesterID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 200)
	var rows []m.ClassModel
	if err := tx.Order("class_name ASC, class_id ASC").Limit(p.PerPage).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "OK", rows, &pg)
}
