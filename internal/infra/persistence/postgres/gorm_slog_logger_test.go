package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"rentql/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingGormLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), buf
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "apartments"`, 3
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newCapturingGormLogger(&config.Config{})
		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("unique violation is a warning", func(t *testing.T) {
		l, buf := newCapturingGormLogger(&config.Config{})
		l.Trace(ctx, time.Now(), sqlFn, errors.New(`ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)`))
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "unique constraint")
	})

	t.Run("other failures are errors", func(t *testing.T) {
		l, buf := newCapturingGormLogger(&config.Config{})
		l.Trace(ctx, time.Now(), sqlFn, errors.New("connection reset"))
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "component=gorm")
	})

	t.Run("slow query uses the configured threshold", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Storage.SlowQueryThreshold = time.Millisecond
		l, buf := newCapturingGormLogger(cfg)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "Slow query")
		assert.Contains(t, buf.String(), "slow_threshold=1ms")
	})

	t.Run("fast queries only log in debug", func(t *testing.T) {
		l, buf := newCapturingGormLogger(&config.Config{})
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		l, buf = newCapturingGormLogger(cfg)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "rows=3")
	})

	t.Run("silent mode drops everything", func(t *testing.T) {
		l, buf := newCapturingGormLogger(&config.Config{})
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
