// file: internals/features/school/classes/class_schedules/dto/lesson_schedule_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/classes/class_schedules/model"
	"schoolku_backend/internals/features/school/classes/class_schedules/scheduling"
)

/* =========================================================
   1) REQUESTS (camelCase, kontrak generate/preview)
   ========================================================= */

type PatternRequest struct {
	DayOfWeek     *int    `json:"dayOfWeek"     validate:"required,min=0,max=6"`
	TimeSlotID    int64   `json:"timeSlotId"    validate:"required,min=1"`
	RoomID        int64   `json:"roomId"        validate:"required,min=1"`
	LecturerID    *int64  `json:"lecturerId"    validate:"omitempty,min=1"`
	SubRangeStart *string `json:"subRangeStart" validate:"omitempty,datetime=2006-01-02"`
	SubRangeEnd   *string `json:"subRangeEnd"   validate:"omitempty,datetime=2006-01-02"`
	IntervalWeeks *int    `json:"intervalWeeks" validate:"omitempty,min=1,max=4"`
}

// patterns kosong sengaja tidak dicek di sini; domain yang menolak (400)
type GenerateLessonsRequest struct {
	SemesterID int64            `json:"semesterId" validate:"required,min=1"`
	ClassID    int64            `json:"classId"    validate:"required,min=1"`
	LecturerID int64            `json:"lecturerId" validate:"required,min=1"`
	Patterns   []PatternRequest `json:"patterns"   validate:"dive"`
}

// ToDomain: parse tanggal; gagal → *scheduling.ValidationError
func (r GenerateLessonsRequest) ToDomain(requestedBy string) (scheduling.Request, error) {
	ve := scheduling.NewValidationError("invalid schedule request")
	out := scheduling.Request{
		SemesterID:  r.SemesterID,
		ClassID:     r.ClassID,
		LecturerID:  r.LecturerID,
		Patterns:    make([]scheduling.Pattern, 0, len(r.Patterns)),
		RequestedBy: requestedBy,
	}

	for i, p := range r.Patterns {
		field := func(name string) string { return fmt.Sprintf("patterns[%d].%s", i, name) }

		pat := scheduling.Pattern{
			TimeSlotID: p.TimeSlotID,
			RoomID:     p.RoomID,
		}
		if p.DayOfWeek != nil {
			pat.DayOfWeek = time.Weekday(*p.DayOfWeek)
		} else {
			ve.Add(field("dayOfWeek"), "required")
		}
		if p.LecturerID != nil {
			pat.LecturerID = *p.LecturerID
		}
		if p.IntervalWeeks != nil {
			pat.IntervalWeeks = *p.IntervalWeeks
		}
		if d, ok, err := parseOptionalDate(p.SubRangeStart); err != nil {
			ve.Add(field("subRangeStart"), "must be YYYY-MM-DD")
		} else if ok {
			pat.SubRangeStart = &d
		}
		if d, ok, err := parseOptionalDate(p.SubRangeEnd); err != nil {
			ve.Add(field("subRangeEnd"), "must be YYYY-MM-DD")
		} else if ok {
			pat.SubRangeEnd = &d
		}
		out.Patterns = append(out.Patterns, pat)
	}

	if ve.HasFields() {
		return scheduling.Request{}, ve
	}
	return out, nil
}

func parseOptionalDate(s *string) (time.Time, bool, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return time.Time{}, false, nil
	}
	d, err := scheduling.ParseDate(strings.TrimSpace(*s))
	if err != nil {
		return time.Time{}, false, err
	}
	return d, true, nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type SkippedDateResponse struct {
	PatternIndex int    `json:"patternIndex"`
	Date         string `json:"date"`
}

type GenerateLessonsResponse struct {
	SemesterID     int64                 `json:"semesterId"`
	ClassID        int64                 `json:"classId"`
	LecturerID     int64                 `json:"lecturerId"`
	LessonsCreated int                   `json:"lessonsCreated"`
	GenerationID   uuid.UUID             `json:"generationId"`
	SkippedDates   []SkippedDateResponse `json:"skippedDates"`
}

type ConflictResponse struct {
	Kind                  string `json:"kind"`
	Date                  string `json:"date"`
	TimeSlotID            int64  `json:"timeSlotId"`
	Resource              string `json:"resource"`
	ConflictingResourceID int64  `json:"conflictingResourceId"`
	ConflictingLessonID   *int64 `json:"conflictingLessonId,omitempty"`
	PatternIndex          int    `json:"patternIndex"`

	ConflictingPatternIndex *int `json:"conflictingPatternIndex,omitempty"`
}

type CandidateResponse struct {
	PatternIndex int    `json:"patternIndex"`
	Date         string `json:"date"`
	TimeSlotID   int64  `json:"timeSlotId"`
	RoomID       int64  `json:"roomId"`
	LecturerID   int64  `json:"lecturerId"`
}

type PreviewLessonsResponse struct {
	Total        int                   `json:"total"`
	Candidates   []CandidateResponse   `json:"candidates"`
	SkippedDates []SkippedDateResponse `json:"skippedDates"`
	Conflicts    []ConflictResponse    `json:"conflicts"`
}

func FromSkipped(in []scheduling.SkippedDate) []SkippedDateResponse {
	out := make([]SkippedDateResponse, 0, len(in))
	for _, s := range in {
		out = append(out, SkippedDateResponse{PatternIndex: s.PatternIndex, Date: s.Date.Format(scheduling.DateLayout)})
	}
	return out
}

func FromConflicts(in []scheduling.Conflict) []ConflictResponse {
	out := make([]ConflictResponse, 0, len(in))
	for _, c := range in {
		out = append(out, ConflictResponse{
			Kind:                  string(c.Kind),
			Date:                  c.Date.Format(scheduling.DateLayout),
			TimeSlotID:            c.TimeSlotID,
			Resource:              c.Resource,
			ConflictingResourceID: c.ConflictingResourceID,
			ConflictingLessonID:   c.ConflictingLessonID,
			PatternIndex:          c.PatternIndex,

			ConflictingPatternIndex: c.ConflictingPatternIndex,
		})
	}
	return out
}

func FromCandidates(in []scheduling.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(in))
	for _, c := range in {
		out = append(out, CandidateResponse{
			PatternIndex: c.PatternIndex,
			Date:         c.Date.Format(scheduling.DateLayout),
			TimeSlotID:   c.TimeSlotID,
			RoomID:       c.RoomID,
			LecturerID:   c.LecturerID,
		})
	}
	return out
}

/* =========================================================
   3) LESSON LIST (snake_case, read API)
   ========================================================= */

type LessonListQuery struct {
	DateFrom *string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   *string `query:"date_to"   validate:"omitempty,datetime=2006-01-02"`
	Status   *string `query:"status"    validate:"omitempty,oneof=scheduled completed canceled"`
}

type LessonResponse struct {
	LessonID            int64      `json:"lesson_id"`
	LessonSemesterID    int64      `json:"lesson_semester_id"`
	LessonClassID       int64      `json:"lesson_class_id"`
	LessonDate          string     `json:"lesson_date"`
	LessonTimeSlotID    int64      `json:"lesson_time_slot_id"`
	LessonRoomID        int64      `json:"lesson_room_id"`
	LessonLecturerID    int64      `json:"lesson_lecturer_id"`
	LessonStatus        string     `json:"lesson_status"`
	LessonMeetingNumber int        `json:"lesson_meeting_number"`
	LessonSlug          string     `json:"lesson_slug"`
	LessonStartsAt      time.Time  `json:"lesson_starts_at"`
	LessonEndsAt        time.Time  `json:"lesson_ends_at"`
	LessonGenerationID  *uuid.UUID `json:"lesson_generation_id,omitempty"`
}

func FromLessonModel(m model.LessonModel) LessonResponse {
	return LessonResponse{
		LessonID:            m.LessonID,
		LessonSemesterID:    m.LessonSemesterID,
		LessonClassID:       m.LessonClassID,
		LessonDate:          m.LessonDate.Format(scheduling.DateLayout),
		LessonTimeSlotID:    m.LessonTimeSlotID,
		LessonRoomID:        m.LessonRoomID,
		LessonLecturerID:    m.LessonLecturerID,
		LessonStatus:        string(m.LessonStatus),
		LessonMeetingNumber: m.LessonMeetingNumber,
		LessonSlug:          m.LessonSlug,
		LessonStartsAt:      m.LessonStartsAt,
		LessonEndsAt:        m.LessonEndsAt,
		LessonGenerationID:  m.LessonGenerationID,
	}
}

func FromLessonModels(rows []model.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromLessonModel(r))
	}
	return out
}
