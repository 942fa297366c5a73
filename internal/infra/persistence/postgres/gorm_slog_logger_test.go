package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"bookstore/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingGormLogger(t *testing.T, debug bool) (logger.Interface, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Database.SlowQueryThreshold = 50 * time.Millisecond

	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn() (string, int64) {
	return `INSERT INTO "locations" ("code") VALUES ('K1')`, 0
}

func TestGormSlogLogger_ConstraintViolationIsNotAnError(t *testing.T) {
	l, buf := newCapturingGormLogger(t, true)
	dup := &pgconn.PgError{Code: sqlStateUniqueViolation, ConstraintName: "idx_locations_code"}

	l.Trace(context.Background(), time.Now(), sqlFn, errors.WithStack(dup))

	out := buf.String()
	assert.Contains(t, out, "GORM constraint violation")
	assert.Contains(t, out, "idx_locations_code")
	assert.NotContains(t, out, "level=ERROR")
}

func TestGormSlogLogger_QuietOutsideDebug(t *testing.T) {
	l, buf := newCapturingGormLogger(t, false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), sqlFn, &pgconn.PgError{Code: sqlStateForeignKeyViolation})
	l.Trace(context.Background(), time.Now(), sqlFn, nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_FailuresAndSlowQueries(t *testing.T) {
	l, buf := newCapturingGormLogger(t, false)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}
