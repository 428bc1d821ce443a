package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/academics/rooms/dto"
	m "schoolku_backend/internals/features/school/academics/rooms/model"
	helper "schoolku_backend/internals/helpers"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB, v *validator.Validate) *RoomController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &RoomController{DB: db, Validate: v}
}

// POST /api/a/rooms
func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req d.RoomCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFields(err))
	}
	row := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Room created", row)
}

// GET /api/u/rooms?q&is_active&page&per_page
func (ctl *RoomController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.UserContext()).Model(&m.RoomModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(room_name) LIKE ? OR LOWER(COALESCE(room_code, '')) LIKE ?)", kw, kw)
	}
	if c.Query("is_active") != "" {
		tx = tx.Where("room_is_active = ?", c.QueryBool("is_active"))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 200)
	var rows []m.RoomModel
	if err := tx.Order("room_name ASC, room_id ASC").Limit(p.PerPage).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "OK", rows, &pg)
}
