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

func TestPoolMonitor_Observe(t *testing.T) {
	tests := []struct {
		name  string
		prev  sql.DBStats
		cur   sql.DBStats
		level string
	}{
		{name: "no new waits", prev: sql.DBStats{WaitCount: 3}, cur: sql.DBStats{WaitCount: 3, WaitDuration: time.Second}},
		{name: "short waits", prev: sql.DBStats{}, cur: sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond}, level: "level=DEBUG"},
		{name: "long waits", prev: sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond}, cur: sql.DBStats{WaitCount: 5, WaitDuration: 400 * time.Millisecond}, level: "level=WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			newPoolMonitor(logger, nil).observe(context.Background(), tt.prev, tt.cur)

			if tt.level == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), "Postgres pool wait")
		})
	}
}
