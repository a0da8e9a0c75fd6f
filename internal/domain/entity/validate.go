package entity

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate проверяет структуру по тегам validate
func Validate(v any) error {
	return validate.Struct(v)
}

// ValidateAll проверяет каждый элемент пакета и объединяет нарушения
func ValidateAll[T any](items []*T) error {
	var all validator.ValidationErrors
	for _, item := range items {
		err := validate.Struct(item)
		if err == nil {
			continue
		}
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return err
		}
		all = append(all, errs...)
	}
	if len(all) > 0 {
		return all
	}
	return nil
}
