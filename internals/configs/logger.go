package configs

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// InitLogger: level dari LOG_LEVEL, format teks dengan timestamp penuh.
func InitLogger(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("LOG_LEVEL %q tidak dikenal, pakai info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	lvl := gormLogger.Warn
	if log.IsLevelEnabled(log.DebugLevel) {
		lvl = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      lvl,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Infof("[GORM] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Warnf("[GORM] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Errorf("[GORM] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := log.WithFields(log.Fields{"file": utils.FileWithLineNum(), "elapsed": elapsed, "rows": rows})

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		entry.WithError(err).Errorf("[SQL] %s", sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		entry.Warnf("[SLOW SQL] %s", sql)
	case l.LogLevel >= gormLogger.Info:
		entry.Debugf("[QUERY] %s", sql)
	}
}
