package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"florist/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(&config.Config{})
	sqlFn := func() (string, int64) { return `SELECT * FROM "orders" WHERE id = $1`, 1 }
	ctx := context.Background()

	gormLogger.Trace(ctx, time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")

	gormLogger.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is ignored")

	gormLogger.Trace(ctx, time.Now(), sqlFn, errors.New("deadlock detected"))
	assert.Contains(t, buf.String(), "Postgres query failed")
	assert.Contains(t, buf.String(), "deadlock detected")
	assert.Contains(t, buf.String(), "storage=postgres")

	buf.Reset()
	gormLogger.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "Postgres slow query")
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	gormLogger.LogMode(logger.Info).Trace(ctx, time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "Postgres query")

	buf.Reset()
	gormLogger.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQueryThresholdFromConfig(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(&config.Config{
		Storage: &config.StorageConfig{Driver: "postgres", SlowQueryThreshold: 2 * time.Second},
	})
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Empty(t, buf.String(), "one second is under the configured threshold")

	gormLogger.Trace(context.Background(), time.Now().Add(-3*time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "slowThreshold=2s")
}

func TestGormSlogLogger_ParamsFilterHidesValuesOutsideDebug(t *testing.T) {
	sql := `UPDATE "users" SET "addresses" = $1 WHERE id = $2`
	params := []any{`[{"phone":"9800000000"}]`, "c3f1"}

	quiet, _ := newBufferedGormLogger(&config.Config{})
	gotSQL, gotParams := quiet.ParamsFilter(context.Background(), sql, params...)
	assert.Equal(t, sql, gotSQL)
	assert.Empty(t, gotParams)

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	verbose, _ := newBufferedGormLogger(debugCfg)
	_, gotParams = verbose.ParamsFilter(context.Background(), sql, params...)
	assert.Equal(t, params, gotParams)
}

func TestGormSlogLogger_DriverMessages(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(&config.Config{})
	ctx := context.Background()

	gormLogger.Info(ctx, "replica %s added", "r1")
	assert.Empty(t, buf.String(), "info is below the default level")

	gormLogger.Warn(ctx, "pool %d%% used", 90)
	assert.Contains(t, buf.String(), "pool 90% used")

	buf.Reset()
	gormLogger.LogMode(logger.Error).Warn(ctx, "dropped")
	assert.Empty(t, buf.String())
}
