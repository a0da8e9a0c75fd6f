package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
)

// SQLSTATE коды, которые различает классификатор
const (
	sqlStateUniqueViolation          = "23505"
	sqlStateForeignKeyViolation      = "23503"
	sqlStateActiveSQLTransaction     = "25001"
	sqlStateInFailedSQLTransaction   = "25P02"
	sqlStateCharacterNotInRepertoire = "22021"
	sqlStateUntranslatableCharacter  = "22P05"

	sqlClassDataException       = "22"
	sqlClassTransactionRollback = "40"
	sqlClassSyntaxOrAccess      = "42"
)

// wrapErr оборачивает ошибку драйвера в PersistenceError с описанием операции
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &domainErrors.PersistenceError{
		Kind:      classify(err),
		Op:        op,
		Duplicate: isUniqueViolation(err),
		Err:       err,
	}
}

// classify определяет вид сбоя по ошибке pgx
func classify(err error) domainErrors.Kind {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.KindNotFound
	}
	if errors.Is(err, pgx.ErrTxClosed) || errors.Is(err, pgx.ErrTxCommitRollback) {
		return domainErrors.KindRollbackTransaction
	}

	var scanErr pgx.ScanArgError
	if errors.As(err, &scanErr) {
		return domainErrors.KindDeserialization
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	return domainErrors.KindDatabase
}

func classifySQLState(code string) domainErrors.Kind {
	switch code {
	case sqlStateForeignKeyViolation:
		// ссылка на строку, которой уже нет
		return domainErrors.KindNotFound
	case sqlStateActiveSQLTransaction:
		return domainErrors.KindAlreadyInTransaction
	case sqlStateInFailedSQLTransaction:
		return domainErrors.KindRollbackTransaction
	case sqlStateCharacterNotInRepertoire, sqlStateUntranslatableCharacter:
		return domainErrors.KindInvalidString
	}

	switch {
	case strings.HasPrefix(code, sqlClassTransactionRollback):
		return domainErrors.KindRollbackTransaction
	case strings.HasPrefix(code, sqlClassSyntaxOrAccess):
		return domainErrors.KindQueryBuilder
	case strings.HasPrefix(code, sqlClassDataException):
		return domainErrors.KindSerialization
	}

	return domainErrors.KindDatabase
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateUniqueViolation
}
