// file: internals/features/school/classes/class_schedules/scheduling/validator.go
package scheduling

import (
	"fmt"
	"hash/fnv"
	"sort"
	"time"
)

type ConflictKind string

const (
	ConflictInternal  ConflictKind = "internal"
	ConflictRoom      ConflictKind = "room"
	ConflictLecturer  ConflictKind = "lecturer"
	ConflictDuplicate ConflictKind = "duplicate"
)

// urutan pengecekan = urutan laporan
var checkOrder = []ConflictKind{ConflictInternal, ConflictRoom, ConflictLecturer, ConflictDuplicate}

func kindRank(k ConflictKind) int {
	for i, c := range checkOrder {
		if c == k {
			return i
		}
	}
	return len(checkOrder)
}

const (
	ResourceRoom     = "room"
	ResourceLecturer = "lecturer"
	ResourceClass    = "class"
)

type Conflict struct {
	Kind                  ConflictKind
	Date                  time.Time
	TimeSlotID            int64
	Resource              string // room | lecturer | class
	ConflictingResourceID int64
	ConflictingLessonID   *int64 // nil untuk konflik internal
	PatternIndex          int

	// internal saja: pattern pertama yang sudah menempati (date, slot)
	ConflictingPatternIndex *int
}

type slotKey struct {
	date string
	slot int64
}

type resourceKey struct {
	date string
	slot int64
	id   int64
}

/* =========================================================
   VALIDATE (pure)
   1) internal overlap di dalam request
   2) room vs lesson kelas mana pun
   3) lecturer vs lesson kelas mana pun
   4) duplicate: kelas target sudah punya lesson di (date, slot)
   Semua konflik dilaporkan; urutan deterministik.
========================================================= */

func Validate(classID int64, candidates []Candidate, existing []ExistingLesson) []Conflict {
	var out []Conflict

	// 1) internal
	firstAt := map[slotKey]Candidate{}
	for _, c := range candidates {
		k := slotKey{dateKey(c.Date), c.TimeSlotID}
		prev, seen := firstAt[k]
		if !seen {
			firstAt[k] = c
			continue
		}
		res, id := ResourceClass, classID
		switch {
		case prev.RoomID == c.RoomID:
			res, id = ResourceRoom, c.RoomID
		case prev.LecturerID == c.LecturerID:
			res, id = ResourceLecturer, c.LecturerID
		}
		first := prev.PatternIndex
		out = append(out, Conflict{
			Kind:                    ConflictInternal,
			Date:                    c.Date,
			TimeSlotID:              c.TimeSlotID,
			Resource:                res,
			ConflictingResourceID:   id,
			PatternIndex:            c.PatternIndex,
			ConflictingPatternIndex: &first,
		})
	}

	// index lesson persisted
	byRoom := map[resourceKey][]ExistingLesson{}
	byLecturer := map[resourceKey][]ExistingLesson{}
	byClass := map[resourceKey][]ExistingLesson{}
	for _, l := range existing {
		d := dateKey(DateOnly(l.Date))
		byRoom[resourceKey{d, l.TimeSlotID, l.RoomID}] = append(byRoom[resourceKey{d, l.TimeSlotID, l.RoomID}], l)
		byLecturer[resourceKey{d, l.TimeSlotID, l.LecturerID}] = append(byLecturer[resourceKey{d, l.TimeSlotID, l.LecturerID}], l)
		byClass[resourceKey{d, l.TimeSlotID, l.ClassID}] = append(byClass[resourceKey{d, l.TimeSlotID, l.ClassID}], l)
	}

	external := func(kind ConflictKind, res string, idx map[resourceKey][]ExistingLesson, pick func(Candidate) int64) {
		for _, c := range candidates {
			rid := pick(c)
			for _, l := range idx[resourceKey{dateKey(c.Date), c.TimeSlotID, rid}] {
				lid := l.ID
				out = append(out, Conflict{
					Kind:                  kind,
					Date:                  c.Date,
					TimeSlotID:            c.TimeSlotID,
					Resource:              res,
					ConflictingResourceID: rid,
					ConflictingLessonID:   &lid,
					PatternIndex:          c.PatternIndex,
				})
			}
		}
	}

	// 2) & 3) lintas kelas
	external(ConflictRoom, ResourceRoom, byRoom, func(c Candidate) int64 { return c.RoomID })
	external(ConflictLecturer, ResourceLecturer, byLecturer, func(c Candidate) int64 { return c.LecturerID })
	// 4) kelas sendiri
	external(ConflictDuplicate, ResourceClass, byClass, func(Candidate) int64 { return classID })

	SortConflicts(out)
	return out
}

// SortConflicts: kind (urutan cek) → date → slot → resource id → lesson id → pattern.
func SortConflicts(cs []Conflict) {
	sort.SliceStable(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]
		if ra, rb := kindRank(a.Kind), kindRank(b.Kind); ra != rb {
			return ra < rb
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.TimeSlotID != b.TimeSlotID {
			return a.TimeSlotID < b.TimeSlotID
		}
		if a.ConflictingResourceID != b.ConflictingResourceID {
			return a.ConflictingResourceID < b.ConflictingResourceID
		}
		la, lb := lessonIDOrZero(a.ConflictingLessonID), lessonIDOrZero(b.ConflictingLessonID)
		if la != lb {
			return la < lb
		}
		return a.PatternIndex < b.PatternIndex
	})
}

func lessonIDOrZero(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

/* =========================================================
   LOCK KEYS
   Key advisory lock per (date, slot, room|lecturer|class),
   unik & terurut supaya urutan lock sama di semua tx.
========================================================= */

func ResourceLockKeys(classID int64, candidates []Candidate) []int64 {
	seen := map[int64]struct{}{}
	keys := make([]int64, 0, len(candidates)*3)
	add := func(kind string, date time.Time, slot, id int64) {
		k := lockKey(kind, date, slot, id)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for _, c := range candidates {
		add(ResourceRoom, c.Date, c.TimeSlotID, c.RoomID)
		add(ResourceLecturer, c.Date, c.TimeSlotID, c.LecturerID)
		add(ResourceClass, c.Date, c.TimeSlotID, classID)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func lockKey(kind string, date time.Time, slot, id int64) int64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "lesson:%s:%s:%d:%d", kind, dateKey(DateOnly(date)), slot, id)
	return int64(h.Sum64())
}
