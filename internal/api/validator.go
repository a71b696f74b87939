package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	app_errors "docurag/backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Request DTOs declare their rules in `validate` struct tags. The validator
// caches struct metadata internally, so one lazily-built instance is shared
// by every handler.

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// validateRequest checks a decoded payload against its tag rules and folds
// any failures into a single ErrValidation, one clause per offending field,
// so the response body names everything the client needs to fix at once.
func validateRequest(payload interface{}) error {
	err := requestValidator().Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Struct() only returns non-ValidationErrors for unvalidatable input.
		return fmt.Errorf("%w: %s", app_errors.ErrValidation, err.Error())
	}

	clauses := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		clauses = append(clauses, fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(clauses, "; "))
}
