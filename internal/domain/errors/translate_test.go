package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
)

func TestKindCode(t *testing.T) {
	tests := []struct {
		kind domainErrors.Kind
		code string
	}{
		{domainErrors.KindDatabase, "database-error"},
		{domainErrors.KindNotFound, "object-not-found"},
		{domainErrors.KindSerialization, "serialization-error"},
		{domainErrors.KindDeserialization, "deserialization-error"},
		{domainErrors.KindQueryBuilder, "query-builder-error"},
		{domainErrors.KindRollbackTransaction, "rollback-transaction"},
		{domainErrors.KindAlreadyInTransaction, "already-in-transaction"},
		{domainErrors.KindInvalidString, "invalid-string"},
		{domainErrors.KindOther, "non-exhaustive"},
		{domainErrors.Kind(100), "non-exhaustive"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.kind.Code())
		})
	}
}

func TestTranslate_Persistence(t *testing.T) {
	cause := errors.New("driver failure")

	tests := []struct {
		name  string
		err   error
		class domainErrors.Class
		codes []string
	}{
		{
			name:  "database",
			err:   &domainErrors.PersistenceError{Kind: domainErrors.KindDatabase, Op: "insert", Err: cause},
			class: domainErrors.ClassInternalServerError,
			codes: []string{"database-error"},
		},
		{
			name:  "not found",
			err:   &domainErrors.PersistenceError{Kind: domainErrors.KindNotFound, Op: "get", Err: cause},
			class: domainErrors.ClassNotFound,
			codes: []string{"object-not-found"},
		},
		{
			name:  "duplicate",
			err:   &domainErrors.PersistenceError{Kind: domainErrors.KindDatabase, Op: "insert", Duplicate: true, Err: cause},
			class: domainErrors.ClassBadRequest,
			codes: []string{"duplication-error"},
		},
		{
			name:  "wrapped deserialization",
			err:   fmt.Errorf("failed to list: %w", &domainErrors.PersistenceError{Kind: domainErrors.KindDeserialization, Op: "scan", Err: cause}),
			class: domainErrors.ClassInternalServerError,
			codes: []string{"deserialization-error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domainErrors.Translate(tt.err)

			require.NotNil(t, got)
			assert.Equal(t, tt.class, got.Class)
			assert.Equal(t, domainErrors.Codes(tt.codes...), got.Codes)
			assert.ErrorIs(t, got, cause)

			var pErr *domainErrors.PersistenceError
			require.ErrorAs(t, tt.err, &pErr)
			assert.Same(t, pErr, got.Persistence)
		})
	}
}

func TestTranslate_DomainErrorPassthrough(t *testing.T) {
	original := domainErrors.NewBadRequest("invalid pagination", domainErrors.CodeNegativeOffset)

	got := domainErrors.Translate(fmt.Errorf("list: %w", original))

	assert.Same(t, original, got)
	assert.Nil(t, got.Persistence)
}

func TestTranslate_NotFoundWrappingPersistence(t *testing.T) {
	pErr := &domainErrors.PersistenceError{Kind: domainErrors.KindNotFound, Op: "get member"}

	got := domainErrors.Translate(domainErrors.NewNotFound("member not found", pErr))

	assert.Equal(t, domainErrors.ClassNotFound, got.Class)
	assert.Nil(t, got.Persistence)
}

func TestTranslate_Unknown(t *testing.T) {
	got := domainErrors.Translate(errors.New("something"))

	assert.Equal(t, domainErrors.ClassInternalServerError, got.Class)
	assert.Equal(t, domainErrors.Codes(domainErrors.CodeInternal), got.Codes)
}

func TestTranslate_Nil(t *testing.T) {
	assert.Nil(t, domainErrors.Translate(nil))
}

type signup struct {
	Email       string `validate:"required,email"`
	DisplayName string `validate:"required"`
	Profile     profile
	Tags        []tag `validate:"dive"`
}

type profile struct {
	IdentityNum string `validate:"required"`
}

type tag struct {
	Label string `validate:"max=3"`
}

func TestTranslate_Validation(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.Struct(signup{
		Email: "broken",
		Tags:  []tag{{Label: "toolong"}, {Label: "x"}, {Label: "again"}},
	})
	require.Error(t, err)

	got := domainErrors.Translate(err)

	assert.Equal(t, domainErrors.ClassBadRequest, got.Class)
	assert.Equal(t, domainErrors.Codes(
		"email-format-error",
		"display-name-required-error",
		"identity-num-required-error",
		"label-max-error",
	), got.Codes)
}

func TestPersistenceError_Is(t *testing.T) {
	notFound := &domainErrors.PersistenceError{Kind: domainErrors.KindNotFound, Op: "get"}
	duplicate := &domainErrors.PersistenceError{Kind: domainErrors.KindDatabase, Op: "insert", Duplicate: true}

	assert.ErrorIs(t, notFound, domainErrors.ErrNotFound)
	assert.NotErrorIs(t, notFound, domainErrors.ErrDuplication)
	assert.ErrorIs(t, duplicate, domainErrors.ErrDuplication)
	assert.NotErrorIs(t, duplicate, domainErrors.ErrNotFound)
}
