package errors

import (
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("NOT_FOUND")
	ErrDuplication  = errors.New("DUPLICATION")
	ErrUnauthorized = errors.New("UNAUTHORIZED")
	ErrInvalidInput = errors.New("INVALID_INPUT")
)

// Коды ошибок, которые не выводятся из вида ошибки хранилища
const (
	CodeDBError                = "db-error"
	CodeDuplication            = "duplication-error"
	CodeDeletedDuplication     = "deleted-duplication-error"
	CodeUncompensatedDelete    = "uncompensated-delete-error"
	CodeObjectNotFound         = "object-not-found"
	CodeLock                   = "lock-error"
	CodeInvalidRequestBody     = "invalid-request-body"
	CodeInvalidIDFormat        = "invalid-id-format"
	CodePaginationFormat       = "pagination-format-error"
	CodeNegativePageSize       = "negative-page-size-error"
	CodeNegativeOffset         = "negative-offset-error"
	CodeUnauthorized           = "unauthorized"
	CodeForbidden              = "forbidden"
	CodeInternal               = "internal-error"
	CodePasswordHash           = "password-hash-error"
	CodeValidationUnknownField = "validation-error"
)

// Class определяет класс ответа, в который заворачиваются коды ошибок
type Class int

const (
	ClassInternalServerError Class = iota
	ClassBadRequest
	ClassNotFound
)

func (c Class) String() string {
	switch c {
	case ClassBadRequest:
		return "BadRequest"
	case ClassNotFound:
		return "NotFound"
	default:
		return "InternalServerError"
	}
}

// ErrorCode одна причина ошибки в стабильном машиночитаемом виде
type ErrorCode struct {
	Code string `json:"code"`
}

// Codes собирает список ErrorCode из строк
func Codes(codes ...string) []ErrorCode {
	result := make([]ErrorCode, 0, len(codes))
	for _, code := range codes {
		result = append(result, ErrorCode{Code: code})
	}
	return result
}

// DomainError представляет доменную ошибку с классом ответа и списком кодов
type DomainError struct {
	Class   Class
	Codes   []ErrorCode
	Message string
	Err     error
	// Persistence задан, только если ошибка получена переводом PersistenceError
	Persistence *PersistenceError
}

func (e *DomainError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if len(e.Codes) > 0 {
		sb.WriteString(" [")
		for i, c := range e.Codes {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(c.Code)
		}
		sb.WriteString("]")
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError создает новую доменную ошибку
func NewDomainError(class Class, message string, err error, codes ...string) *DomainError {
	return &DomainError{
		Class:   class,
		Codes:   Codes(codes...),
		Message: message,
		Err:     err,
	}
}

// NewBadRequest создает ошибку некорректного запроса
func NewBadRequest(message string, codes ...string) *DomainError {
	return NewDomainError(ClassBadRequest, message, ErrInvalidInput, codes...)
}

// NewNotFound создает ошибку отсутствующего объекта
func NewNotFound(message string, err error) *DomainError {
	if err == nil {
		err = ErrNotFound
	}
	return NewDomainError(ClassNotFound, message, err, CodeObjectNotFound)
}

// NewInternal создает внутреннюю ошибку сервера
func NewInternal(message string, err error, codes ...string) *DomainError {
	if len(codes) == 0 {
		codes = []string{CodeDBError}
	}
	return NewDomainError(ClassInternalServerError, message, err, codes...)
}
