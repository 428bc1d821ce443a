package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/classes/class_schedules/model"
)

const DefaultSweepSchedule = "@every 15m"

// ── ENTRYPOINT: panggil dari main.go (serve)
// Lesson "scheduled" yang sudah lewat ends_at → "completed".
func StartLessonSweepCron(db *gorm.DB, schedule string) (*cron.Cron, error) {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		n, err := RunLessonSweep(ctx, db, time.Now())
		if err != nil {
			log.Errorf("[LESSON-SWEEP] error: %v", err)
			return
		}
		if n > 0 {
			log.Infof("[LESSON-SWEEP] %d lesson ditandai completed", n)
		}
	})
	if err != nil {
		return nil, err
	}

	log.Infof("[LESSON-SWEEP] started schedule=%q", schedule)
	c.Start()
	return c, nil
}

func RunLessonSweep(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Model(&model.LessonModel{}).
		Where("lesson_status = ? AND lesson_ends_at < ?", model.LessonStatusScheduled, now.UTC()).
		Update("lesson_status", model.LessonStatusCompleted)
	return res.RowsAffected, res.Error
}
