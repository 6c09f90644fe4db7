package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitorReport(t *testing.T) {
	buf := &bytes.Buffer{}
	m := &poolMonitor{
		logger:        slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		warnThreshold: 50 * time.Millisecond,
	}
	ctx := context.Background()
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	m.report(ctx, prev, prev)
	assert.Empty(t, buf.String())

	m.report(ctx, prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "avg_wait=10ms")

	buf.Reset()
	m.report(ctx, prev, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=1")
}
