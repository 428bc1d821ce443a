// file: internals/features/school/classes/class_schedules/services/generate_lessons_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/classes/class_schedules/model"
	"schoolku_backend/internals/features/school/classes/class_schedules/repository"
	"schoolku_backend/internals/features/school/classes/class_schedules/scheduling"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/dbtime"
)

const (
	DefaultBatchSize     = 500
	DefaultMaxCandidates = 5000
)

/* =========================
   Generator + Options
========================= */

type Generator struct {
	Tx            repository.TxManager
	Loc           *time.Location
	BatchSize     int
	MaxCandidates int

	newID func() uuid.UUID
}

type GenerateOptions struct {
	TZName        string
	BatchSize     int
	MaxCandidates int
}

func NewGenerator(tx repository.TxManager, opts GenerateOptions) *Generator {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = DefaultMaxCandidates
	}
	return &Generator{
		Tx:            tx,
		Loc:           dbtime.LoadSchoolLocation(opts.TZName),
		BatchSize:     opts.BatchSize,
		MaxCandidates: opts.MaxCandidates,
		newID:         uuid.New,
	}
}

type GenerateResult struct {
	GenerationID   uuid.UUID
	LessonsCreated int
	Skipped        []scheduling.SkippedDate
}

type PreviewResult struct {
	Candidates []scheduling.Candidate
	Skipped    []scheduling.SkippedDate
	Conflicts  []scheduling.Conflict
}

/* =========================
   Public API
========================= */

// Generate: expand → validate → commit dalam satu transaksi.
// Error selalu salah satu dari *ValidationError, *ConflictError, *InfrastructureError.
func (g *Generator) Generate(ctx context.Context, req scheduling.Request) (*GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var res *GenerateResult
	err := g.Tx.WithTx(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		p, err := g.plan(ctx, repos, req)
		if err != nil {
			return err
		}

		if err := repos.Classes.LockClass(ctx, req.ClassID); err != nil {
			return infra("lock class", err)
		}

		keys := scheduling.ResourceLockKeys(req.ClassID, p.exp.Candidates)
		if err := repos.Lessons.LockResourceKeys(ctx, keys); err != nil {
			return infra("lock resource keys", err)
		}

		conflicts, err := g.conflicts(ctx, repos, req.ClassID, p.exp)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &scheduling.ConflictError{Conflicts: conflicts}
		}

		res, err = g.commit(ctx, repos, req, p)
		return err
	})
	if err != nil {
		err = classify("commit schedule", err)
		logOutcome(req, err)
		return nil, err
	}

	log.Infof("[Generator] semester=%d class=%d created=%d skipped=%d generation=%s",
		req.SemesterID, req.ClassID, res.LessonsCreated, len(res.Skipped), res.GenerationID)
	return res, nil
}

// Preview: expand + validate tanpa menulis apa pun.
func (g *Generator) Preview(ctx context.Context, req scheduling.Request) (*PreviewResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var res *PreviewResult
	err := g.Tx.WithTx(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		p, err := g.plan(ctx, repos, req)
		if err != nil {
			return err
		}
		conflicts, err := g.conflicts(ctx, repos, req.ClassID, p.exp)
		if err != nil {
			return err
		}
		res = &PreviewResult{Candidates: p.exp.Candidates, Skipped: p.exp.Skipped, Conflicts: conflicts}
		return nil
	})
	if err != nil {
		return nil, classify("preview schedule", err)
	}
	return res, nil
}

/* =========================
   Steps
========================= */

type plan struct {
	class repository.ClassRef
	slots map[int64]repository.TimeSlotRef
	exp   scheduling.Expansion
}

func (g *Generator) plan(ctx context.Context, repos repository.TxRepositories, req scheduling.Request) (*plan, error) {
	ve := scheduling.NewValidationError("invalid schedule request")

	sem, err := repos.Semesters.GetSemesterRange(ctx, req.SemesterID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ve.Add("semesterId", "semester not found")
	case err != nil:
		return nil, infra("load semester", err)
	}

	class, err := repos.Classes.GetClass(ctx, req.ClassID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ve.Add("classId", "class not found")
	case err != nil:
		return nil, infra("load class", err)
	case class.SemesterID != req.SemesterID:
		return nil, ve.Add("classId", "class does not belong to the semester")
	}

	slotIDs, roomIDs := referencedIDs(req.Patterns)
	slots, err := repos.References.GetTimeSlots(ctx, slotIDs)
	if err != nil {
		return nil, infra("load time slots", err)
	}
	rooms, err := repos.References.ExistingRoomIDs(ctx, roomIDs)
	if err != nil {
		return nil, infra("load rooms", err)
	}
	for i, p := range req.Patterns {
		if _, ok := slots[p.TimeSlotID]; !ok {
			ve.Add(fmt.Sprintf("patterns[%d].timeSlotId", i), "time slot not found")
		}
		if !rooms[p.RoomID] {
			ve.Add(fmt.Sprintf("patterns[%d].roomId", i), "room not found")
		}
	}
	if ve.HasFields() {
		return nil, ve
	}

	window := scheduling.NewWindow(sem.Start, sem.End)
	holidays, err := repos.Holidays.GetHolidays(ctx, req.SemesterID, window)
	if err != nil {
		return nil, infra("load holidays", err)
	}

	exp := scheduling.ExpandAll(window, holidays, req.Patterns, req.LecturerID)
	if len(exp.Candidates) > g.MaxCandidates {
		return nil, ve.Add("patterns", fmt.Sprintf("request expands to %d lessons (max %d)", len(exp.Candidates), g.MaxCandidates))
	}
	return &plan{class: class, slots: slots, exp: exp}, nil
}

func (g *Generator) conflicts(ctx context.Context, repos repository.TxRepositories, classID int64, exp scheduling.Expansion) ([]scheduling.Conflict, error) {
	span, ok := exp.Span()
	if !ok {
		return nil, nil
	}
	existing, err := repos.Lessons.GetLessonsInRange(ctx, span.Start, span.End)
	if err != nil {
		return nil, infra("load existing lessons", err)
	}
	return scheduling.Validate(classID, exp.Candidates, existing), nil
}

func (g *Generator) commit(ctx context.Context, repos repository.TxRepositories, req scheduling.Request, p *plan) (*GenerateResult, error) {
	maxMeeting, err := repos.Lessons.MaxMeetingNumber(ctx, req.ClassID)
	if err != nil {
		return nil, infra("load meeting number", err)
	}

	genID := g.newID()
	rows := g.buildLessons(req, p, genID, maxMeeting)

	patternsJSON, err := sonic.Marshal(patternSnapshots(req.Patterns))
	if err != nil {
		return nil, infra("encode patterns", err)
	}
	skippedJSON, err := sonic.Marshal(skippedSnapshots(p.exp.Skipped))
	if err != nil {
		return nil, infra("encode skipped dates", err)
	}
	gen := &model.ScheduleGenerationModel{
		ScheduleGenerationID:             genID,
		ScheduleGenerationSemesterID:     req.SemesterID,
		ScheduleGenerationClassID:        req.ClassID,
		ScheduleGenerationLecturerID:     req.LecturerID,
		ScheduleGenerationPatterns:       datatypes.JSON(patternsJSON),
		ScheduleGenerationSkippedDates:   datatypes.JSON(skippedJSON),
		ScheduleGenerationLessonsCreated: len(rows),
	}
	if req.RequestedBy != "" {
		by := req.RequestedBy
		gen.ScheduleGenerationRequestedBy = &by
	}
	if err := repos.Lessons.InsertGeneration(ctx, gen); err != nil {
		return nil, infra("insert generation", err)
	}

	created, err := repos.Lessons.InsertLessons(ctx, rows, g.BatchSize)
	if err != nil {
		return nil, infra("insert lessons", err)
	}
	if created != len(rows) {
		return nil, infra("insert lessons", fmt.Errorf("inserted %d of %d rows", created, len(rows)))
	}

	return &GenerateResult{GenerationID: genID, LessonsCreated: created, Skipped: p.exp.Skipped}, nil
}

// buildLessons: meeting_number lanjut dari max kelas, urut kronologis (tanggal, jam mulai slot).
func (g *Generator) buildLessons(req scheduling.Request, p *plan, genID uuid.UUID, maxMeeting int) []model.LessonModel {
	cands := append([]scheduling.Candidate(nil), p.exp.Candidates...)
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		sa, sb := p.slots[a.TimeSlotID].Start.Time, p.slots[b.TimeSlotID].Start.Time
		if !sa.Equal(sb) {
			return sa.Before(sb)
		}
		return a.TimeSlotID < b.TimeSlotID
	})

	rows := make([]model.LessonModel, 0, len(cands))
	for i, c := range cands {
		slot := p.slots[c.TimeSlotID]
		startsAt := dbtime.CombineDateAndTod(c.Date, slot.Start, g.Loc)
		endsAt := dbtime.CombineDateAndTod(c.Date, slot.End, g.Loc)
		if !endsAt.After(startsAt) {
			endsAt = endsAt.Add(24 * time.Hour)
		}
		n := maxMeeting + i + 1
		gid := genID
		rows = append(rows, model.LessonModel{
			LessonSemesterID:    req.SemesterID,
			LessonClassID:       req.ClassID,
			LessonDate:          c.Date,
			LessonTimeSlotID:    c.TimeSlotID,
			LessonRoomID:        c.RoomID,
			LessonLecturerID:    c.LecturerID,
			LessonStatus:        model.LessonStatusScheduled,
			LessonMeetingNumber: n,
			LessonSlug:          helper.LessonSlug(p.class.Slug, n),
			LessonStartsAt:      startsAt,
			LessonEndsAt:        endsAt,
			LessonGenerationID:  &gid,
		})
	}
	return rows
}

/* =========================
   Helpers
========================= */

func referencedIDs(patterns []scheduling.Pattern) (slots, rooms []int64) {
	seenSlot, seenRoom := map[int64]bool{}, map[int64]bool{}
	for _, p := range patterns {
		if !seenSlot[p.TimeSlotID] {
			seenSlot[p.TimeSlotID] = true
			slots = append(slots, p.TimeSlotID)
		}
		if !seenRoom[p.RoomID] {
			seenRoom[p.RoomID] = true
			rooms = append(rooms, p.RoomID)
		}
	}
	return slots, rooms
}

type patternSnapshot struct {
	DayOfWeek     int    `json:"dayOfWeek"`
	TimeSlotID    int64  `json:"timeSlotId"`
	RoomID        int64  `json:"roomId"`
	LecturerID    int64  `json:"lecturerId,omitempty"`
	SubRangeStart string `json:"subRangeStart,omitempty"`
	SubRangeEnd   string `json:"subRangeEnd,omitempty"`
	IntervalWeeks int    `json:"intervalWeeks,omitempty"`
}

func patternSnapshots(ps []scheduling.Pattern) []patternSnapshot {
	out := make([]patternSnapshot, 0, len(ps))
	for _, p := range ps {
		s := patternSnapshot{
			DayOfWeek:     int(p.DayOfWeek),
			TimeSlotID:    p.TimeSlotID,
			RoomID:        p.RoomID,
			LecturerID:    p.LecturerID,
			IntervalWeeks: p.IntervalWeeks,
		}
		if p.SubRangeStart != nil {
			s.SubRangeStart = p.SubRangeStart.Format(scheduling.DateLayout)
		}
		if p.SubRangeEnd != nil {
			s.SubRangeEnd = p.SubRangeEnd.Format(scheduling.DateLayout)
		}
		out = append(out, s)
	}
	return out
}

type skippedSnapshot struct {
	PatternIndex int    `json:"patternIndex"`
	Date         string `json:"date"`
}

func skippedSnapshots(ss []scheduling.SkippedDate) []skippedSnapshot {
	out := make([]skippedSnapshot, 0, len(ss))
	for _, s := range ss {
		out = append(out, skippedSnapshot{PatternIndex: s.PatternIndex, Date: s.Date.Format(scheduling.DateLayout)})
	}
	return out
}

func infra(op string, err error) *scheduling.InfrastructureError {
	return &scheduling.InfrastructureError{Op: op, Err: err, Retryable: helper.IsRetryablePGError(err)}
}

// classify: error domain diteruskan apa adanya, sisanya (commit/begin gagal) → InfrastructureError.
func classify(op string, err error) error {
	if scheduling.IsValidation(err) || scheduling.IsConflict(err) || scheduling.IsInfrastructure(err) {
		return err
	}
	return infra(op, err)
}

func logOutcome(req scheduling.Request, err error) {
	var ce *scheduling.ConflictError
	var ie *scheduling.InfrastructureError
	switch {
	case errors.As(err, &ce):
		log.Infof("[Generator] rejected semester=%d class=%d: %v", req.SemesterID, req.ClassID, ce)
	case errors.As(err, &ie):
		log.WithField("retryable", ie.Retryable).Errorf("[Generator] semester=%d class=%d: %v", req.SemesterID, req.ClassID, ie)
	default:
		log.Debugf("[Generator] invalid request semester=%d class=%d: %v", req.SemesterID, req.ClassID, err)
	}
}
