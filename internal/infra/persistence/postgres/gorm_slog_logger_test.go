package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"userhub/config"
	deliverycontext "userhub/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "users" WHERE id = 1`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantLog bool
	}{
		{name: "fast success is silent", begin: time.Now(), wantLog: false},
		{name: "fast success logged in debug", debug: true, begin: time.Now(), want: "GORM query", wantLog: true},
		{name: "slow query warns", begin: time.Now().Add(-time.Second), want: "GORM slow query", wantLog: true},
		{name: "failure is an error", begin: time.Now(), err: errors.New("syntax error"), want: "GORM query failed", wantLog: true},
		{name: "not found is ignored", begin: time.Now(), err: gorm.ErrRecordNotFound, wantLog: false},
		{name: "cancel is a warning", begin: time.Now(), err: errors.WithStack(context.Canceled), want: "GORM query cancelled", wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newCapturingGormLogger(tt.debug)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "users")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newCapturingGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Contains(t, reqBuf.String(), "request_id=req-9")
}

func TestGormSlogLogger_LogModeSilent(t *testing.T) {
	l, buf := newCapturingGormLogger(true)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	silent.Error(context.Background(), "failed %d", 1)

	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "pool %s", "busy")
	assert.Contains(t, buf.String(), "pool busy")
}
