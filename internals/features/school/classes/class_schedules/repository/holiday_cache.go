package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"schoolku_backend/internals/features/school/classes/class_schedules/scheduling"
)

const holidayVersionKey = "holidays:version"

/* =========================================================
   Redis read-through cache untuk kalender libur.
   Key: holidays:v{ver}:semester:{id}:{start}:{end}
   Invalidate = INCR versi (key lama kadaluarsa sendiri via TTL).
   Redis error tidak pernah menggagalkan request: fallback ke DB.
========================================================= */

type HolidayCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewHolidayCache: rdb nil → nil (cache nonaktif).
func NewHolidayCache(rdb redis.UniversalClient, ttl time.Duration) *HolidayCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &HolidayCache{rdb: rdb, ttl: ttl}
}

// Wrap: cache nil → next apa adanya.
func (c *HolidayCache) Wrap(next HolidayRepository) HolidayRepository {
	if c == nil {
		return next
	}
	return &cachedHolidayRepository{cache: c, next: next}
}

// Invalidate dipanggil setelah holiday dibuat/dihapus.
func (c *HolidayCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Incr(ctx, holidayVersionKey).Err()
}

func (c *HolidayCache) key(ctx context.Context, semesterID int64, w scheduling.Window) (string, error) {
	ver, err := c.rdb.Get(ctx, holidayVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		ver, err = 0, nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("holidays:v%d:semester:%d:%s:%s", ver, semesterID,
		w.Start.Format(scheduling.DateLayout), w.End.Format(scheduling.DateLayout)), nil
}

type cachedHolidayRepository struct {
	cache *HolidayCache
	next  HolidayRepository
}

func (r *cachedHolidayRepository) GetHolidays(ctx context.Context, semesterID int64, w scheduling.Window) (scheduling.HolidaySet, error) {
	key, err := r.cache.key(ctx, semesterID, w)
	if err != nil {
		log.Warnf("[HolidayCache] version lookup failed, bypass cache: %v", err)
		return r.next.GetHolidays(ctx, semesterID, w)
	}

	if raw, err := r.cache.rdb.Get(ctx, key).Bytes(); err == nil {
		var dates []string
		if er := sonic.Unmarshal(raw, &dates); er == nil {
			set := scheduling.HolidaySet{}
			for _, s := range dates {
				if d, er := scheduling.ParseDate(s); er == nil {
					set.Add(d)
				}
			}
			return set, nil
		}
		log.Warnf("[HolidayCache] corrupt entry %s, reloading", key)
	} else if !errors.Is(err, redis.Nil) {
		log.Warnf("[HolidayCache] GET %s failed: %v", key, err)
	}

	set, err := r.next.GetHolidays(ctx, semesterID, w)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(set))
	for _, d := range set.Dates() {
		dates = append(dates, d.Format(scheduling.DateLayout))
	}
	if raw, er := sonic.Marshal(dates); er == nil {
		if er := r.cache.rdb.Set(ctx, key, raw, r.cache.ttl).Err(); er != nil {
			log.Warnf("[HolidayCache] SET %s failed: %v", key, er)
		}
	}
	return set, nil
}
