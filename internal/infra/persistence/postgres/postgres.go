package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"userhub/config"
	"userhub/internal/domain/lifecycle"
	"userhub/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval       = 5 * time.Second
	poolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary (and replica) connections and registers ping/close hooks.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement work goes through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{
		logger:   params.Logger.With(slog.String("component", "postgres")),
		sqlDB:    sqlDB,
		interval: poolMonitorInterval,
	}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolMonitor reports connection-pool contention observed since the previous tick.
type poolMonitor struct {
	logger   *slog.Logger
	sqlDB    *sql.DB
	interval time.Duration
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.sqlDB == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.sqlDB.Stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}

	waitDurationDelta := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	level := slog.LevelDebug
	if waitDurationDelta >= poolWarnDurationThreshold {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "Postgres pool wait observed", attrs...)
}
