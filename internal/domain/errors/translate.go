package errors

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Translate приводит любую ошибку к DomainError с классом ответа и кодами.
// Функция чистая: ничего не логирует и не меняет.
func Translate(err error) *DomainError {
	if err == nil {
		return nil
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return FromValidation(validationErrs)
	}

	var persistenceErr *PersistenceError
	if errors.As(err, &persistenceErr) {
		return fromPersistence(persistenceErr, err)
	}

	return NewDomainError(ClassInternalServerError, "internal server error", err, CodeInternal)
}

func fromPersistence(pErr *PersistenceError, err error) *DomainError {
	var domainErr *DomainError
	switch {
	case pErr.Duplicate:
		domainErr = NewDomainError(ClassBadRequest, "object already exists", err, CodeDuplication)
	case pErr.Kind == KindNotFound:
		domainErr = NewDomainError(ClassNotFound, "object not found", err, CodeObjectNotFound)
	default:
		domainErr = NewDomainError(ClassInternalServerError, "persistence failure", err, pErr.Kind.Code())
	}
	domainErr.Persistence = pErr
	return domainErr
}

// FromValidation возвращает по одному коду на каждое нарушенное правило поля.
// Ошибки вложенных структур и элементов списков тоже попадают в результат,
// одинаковые коды схлопываются с сохранением порядка.
func FromValidation(errs validator.ValidationErrors) *DomainError {
	seen := make(map[string]struct{}, len(errs))
	codes := make([]string, 0, len(errs))
	for _, fe := range errs {
		code := ruleCode(fe.Field(), fe.Tag())
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		codes = append(codes, CodeValidationUnknownField)
	}
	return NewDomainError(ClassBadRequest, "validation failed", errs, codes...)
}

func ruleCode(field, tag string) string {
	switch tag {
	case "email":
		return "email-format-error"
	case "":
		return CodeValidationUnknownField
	}
	return kebab(field) + "-" + tag + "-error"
}

// kebab переводит IdentityNum в identity-num
func kebab(s string) string {
	var sb strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
