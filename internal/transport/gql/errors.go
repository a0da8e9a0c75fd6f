package gql

import (
	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
)

const (
	messagePersistence = "gql_persistence_error"
	messageBadRequest  = "gql_bad_request"
	typeUnauthorized   = "Unauthorized"
	extensionKeyType   = "type"
	extensionKeyCodes  = "codes"
)

// resolverError ошибка GraphQL с расширениями type и codes
type resolverError struct {
	message string
	kind    string
	codes   []string
	err     error
}

func (e *resolverError) Error() string { return e.message }

func (e *resolverError) Unwrap() error { return e.err }

// Extensions попадает в поле extensions ответа
func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		extensionKeyType:  e.kind,
		extensionKeyCodes: e.codes,
	}
}

// toResolverError переводит ошибку usecase в ошибку GraphQL.
// type берется из Kind, только если ответ построен напрямую из ошибки хранилища,
// иначе из класса ответа.
func toResolverError(err error) *resolverError {
	domainErr := domainErrors.Translate(err)

	codes := make([]string, 0, len(domainErr.Codes))
	for _, c := range domainErr.Codes {
		codes = append(codes, c.Code)
	}

	if domainErr.Persistence != nil {
		return &resolverError{
			message: messagePersistence,
			kind:    domainErr.Persistence.Kind.String(),
			codes:   codes,
			err:     err,
		}
	}

	return &resolverError{
		message: messageBadRequest,
		kind:    domainErr.Class.String(),
		codes:   codes,
		err:     err,
	}
}

func unauthorizedError() *resolverError {
	return &resolverError{
		message: messageBadRequest,
		kind:    typeUnauthorized,
		codes:   []string{domainErrors.CodeUnauthorized},
		err:     domainErrors.ErrUnauthorized,
	}
}
