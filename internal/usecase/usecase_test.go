package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
)

var errBoom = errors.New("boom")

func dbErr(op string) error {
	return &domainErrors.PersistenceError{Kind: domainErrors.KindDatabase, Op: op, Err: errBoom}
}

func notFoundErr(op string) error {
	return &domainErrors.PersistenceError{Kind: domainErrors.KindNotFound, Op: op, Err: errBoom}
}

func duplicateErr(op string) error {
	return &domainErrors.PersistenceError{Kind: domainErrors.KindDatabase, Op: op, Duplicate: true, Err: errBoom}
}

// requireCodes проверяет класс ответа и коды ошибки в порядке следования
func requireCodes(t *testing.T, err error, class domainErrors.Class, codes ...string) {
	t.Helper()

	require.Error(t, err)
	domainErr := domainErrors.Translate(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, class, domainErr.Class)
	assert.Equal(t, domainErrors.Codes(codes...), domainErr.Codes)
}
