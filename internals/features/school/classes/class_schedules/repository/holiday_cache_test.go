package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/school/classes/class_schedules/scheduling"
)

type stubHolidayRepo struct {
	set   scheduling.HolidaySet
	calls int
}

func (s *stubHolidayRepo) GetHolidays(_ context.Context, _ int64, _ scheduling.Window) (scheduling.HolidaySet, error) {
	s.calls++
	return s.set, nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := scheduling.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestHolidayCache_DisabledWithoutRedis(t *testing.T) {
	cache := NewHolidayCache(nil, time.Minute)
	require.Nil(t, cache)

	assert.NoError(t, cache.Invalidate(context.Background()))

	next := &stubHolidayRepo{set: scheduling.NewHolidaySet()}
	assert.Same(t, next, cache.Wrap(next))
}

func TestHolidayCache_FallsBackWhenRedisDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	holiday := mustDate(t, "2025-02-17")
	next := &stubHolidayRepo{set: scheduling.NewHolidaySet(holiday)}
	repo := NewHolidayCache(rdb, time.Minute).Wrap(next)

	window := scheduling.NewWindow(mustDate(t, "2025-01-01"), mustDate(t, "2025-04-30"))
	set, err := repo.GetHolidays(context.Background(), 1, window)

	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)
	assert.True(t, set.Contains(holiday))
}
