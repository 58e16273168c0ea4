// Package validate is a thin wrapper around go-playground/validator that
// shares one validator instance across the application.
package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}

// Struct validates a struct using its `validate` tags.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single value against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
