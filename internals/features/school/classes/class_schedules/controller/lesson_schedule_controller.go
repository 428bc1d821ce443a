// file: internals/features/school/classes/class_schedules/controller/lesson_schedule_controller.go
package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	d "schoolku_backend/internals/features/school/classes/class_schedules/dto"
	"schoolku_backend/internals/features/school/classes/class_schedules/scheduling"
	svc "schoolku_backend/internals/features/school/classes/class_schedules/services"
)

/* =========================
   Controller & Constructor
   ========================= */

type LessonGenerator interface {
	Generate(ctx context.Context, req scheduling.Request) (*svc.GenerateResult, error)
	Preview(ctx context.Context, req scheduling.Request) (*svc.PreviewResult, error)
}

type LessonScheduleController struct {
	Gen      LessonGenerator
	Validate *validator.Validate
}

func NewLessonSchedule(gen LessonGenerator, v *validator.Validate) *LessonScheduleController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &LessonScheduleController{Gen: gen, Validate: v}
}

/* =========================
   POST /lesson-schedules/generate
   ========================= */

func (ctl *LessonScheduleController) Generate(c *fiber.Ctx) error {
	req, err := ctl.parseRequest(c)
	if err != nil {
		return writeScheduleError(c, err)
	}

	res, err := ctl.Gen.Generate(c.UserContext(), req)
	if err != nil {
		return writeScheduleError(c, err)
	}

	return helper.JsonCreated(c, "Jadwal berhasil dibuat", d.GenerateLessonsResponse{
		SemesterID:     req.SemesterID,
		ClassID:        req.ClassID,
		LecturerID:     req.LecturerID,
		LessonsCreated: res.LessonsCreated,
		GenerationID:   res.GenerationID,
		SkippedDates:   d.FromSkipped(res.Skipped),
	})
}

/* =========================
   POST /lesson-schedules/preview (dry-run)
   ========================= */

func (ctl *LessonScheduleController) Preview(c *fiber.Ctx) error {
	req, err := ctl.parseRequest(c)
	if err != nil {
		return writeScheduleError(c, err)
	}

	res, err := ctl.Gen.Preview(c.UserContext(), req)
	if err != nil {
		return writeScheduleError(c, err)
	}

	return helper.JsonOK(c, "Preview jadwal", d.PreviewLessonsResponse{
		Total:        len(res.Candidates),
		Candidates:   d.FromCandidates(res.Candidates),
		SkippedDates: d.FromSkipped(res.Skipped),
		Conflicts:    d.FromConflicts(res.Conflicts),
	})
}

/* =========================
   Helpers
   ========================= */

func (ctl *LessonScheduleController) parseRequest(c *fiber.Ctx) (scheduling.Request, error) {
	var body d.GenerateLessonsRequest
	if err := c.BodyParser(&body); err != nil {
		return scheduling.Request{}, scheduling.NewValidationError("invalid JSON body").Add("_", err.Error())
	}
	if err := ctl.Validate.Struct(body); err != nil {
		ve := scheduling.NewValidationError("invalid schedule request")
		for field, msgs := range helper.ValidatorFields(err) {
			for _, m := range msgs {
				ve.Add(field, m)
			}
		}
		return scheduling.Request{}, ve
	}
	return body.ToDomain(helperAuth.GetUserID(c))
}

// writeScheduleError: Validation → 400, Conflict → 409, Infrastructure → 500/503.
func writeScheduleError(c *fiber.Ctx, err error) error {
	var ve *scheduling.ValidationError
	var ce *scheduling.ConflictError
	var ie *scheduling.InfrastructureError

	switch {
	case errors.As(err, &ve):
		return helper.JsonFieldErrors(c, http.StatusBadRequest, helper.CodeValidation, ve.Message, ve.Fields)
	case errors.As(err, &ce):
		return helper.JsonConflict(c, "Jadwal bentrok, tidak ada lesson yang dibuat", d.FromConflicts(ce.Conflicts))
	case errors.As(err, &ie) && ie.Retryable:
		return helper.JsonError(c, http.StatusServiceUnavailable, "Transaksi bentrok dengan request lain, silakan ulangi")
	default:
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
}
