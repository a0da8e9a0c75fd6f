package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domainErrors.Kind
	}{
		{"no rows", pgx.ErrNoRows, domainErrors.KindNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), domainErrors.KindNotFound},
		{"tx closed", pgx.ErrTxClosed, domainErrors.KindRollbackTransaction},
		{"commit rollback", pgx.ErrTxCommitRollback, domainErrors.KindRollbackTransaction},
		{"scan arg", pgx.ScanArgError{ColumnIndex: 1, Err: errors.New("bad")}, domainErrors.KindDeserialization},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domainErrors.KindDatabase},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, domainErrors.KindNotFound},
		{"active transaction", &pgconn.PgError{Code: "25001"}, domainErrors.KindAlreadyInTransaction},
		{"failed transaction", &pgconn.PgError{Code: "25P02"}, domainErrors.KindRollbackTransaction},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, domainErrors.KindRollbackTransaction},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, domainErrors.KindRollbackTransaction},
		{"syntax error", &pgconn.PgError{Code: "42601"}, domainErrors.KindQueryBuilder},
		{"undefined column", &pgconn.PgError{Code: "42703"}, domainErrors.KindQueryBuilder},
		{"character not in repertoire", &pgconn.PgError{Code: "22021"}, domainErrors.KindInvalidString},
		{"untranslatable character", &pgconn.PgError{Code: "22P05"}, domainErrors.KindInvalidString},
		{"string too long", &pgconn.PgError{Code: "22001"}, domainErrors.KindSerialization},
		{"connection", errors.New("connection refused"), domainErrors.KindDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestWrapErr(t *testing.T) {
	assert.NoError(t, wrapErr("noop", nil))

	err := wrapErr("failed to create user", &pgconn.PgError{Code: "23505"})

	var pErr *domainErrors.PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "failed to create user", pErr.Op)
	assert.True(t, pErr.Duplicate)
	assert.ErrorIs(t, err, domainErrors.ErrDuplication)

	err = wrapErr("failed to get user", pgx.ErrNoRows)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
