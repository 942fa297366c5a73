package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{
			name:   "unique violation from driver",
			err:    &pgconn.PgError{Code: sqlStateUniqueViolation, ConstraintName: "idx_locations_code"},
			unique: true,
		},
		{
			name:       "wrapped foreign key violation",
			err:        errors.Wrap(&pgconn.PgError{Code: sqlStateForeignKeyViolation}, "delete location"),
			foreignKey: true,
		},
		{
			name:    "not null violation",
			err:     fmt.Errorf("insert: %w", &pgconn.PgError{Code: sqlStateNotNullViolation}),
			notNull: true,
		},
		{
			name:  "check violation",
			err:   &pgconn.PgError{Code: sqlStateCheckViolation},
			check: true,
		},
		{
			name:   "translated gorm duplicate",
			err:    gorm.ErrDuplicatedKey,
			unique: true,
		},
		{
			name:       "translated gorm foreign key",
			err:        gorm.ErrForeignKeyViolated,
			foreignKey: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}

func TestViolatedConstraint(t *testing.T) {
	err := errors.Wrap(&pgconn.PgError{Code: sqlStateUniqueViolation, ConstraintName: "idx_users_email"}, "create user")
	assert.Equal(t, "idx_users_email", violatedConstraint(err))
	assert.Empty(t, violatedConstraint(errors.New("boom")))
}
