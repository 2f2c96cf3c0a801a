package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/walkthrough/internal/domain/overlay"
	walkthrougherrors "github.com/alexisbeaulieu97/walkthrough/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	stepNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("step_name", func(fl validator.FieldLevel) bool {
			return stepNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("easing", func(fl validator.FieldLevel) bool {
			_, ok := overlay.EasingByName(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a tour definition.
func Validate(t *Tour) error {
	if t == nil {
		return walkthrougherrors.NewValidationError("tour", "tour definition is nil", nil)
	}

	if err := validatorInstance().Struct(t); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(t.Steps))
	for i, step := range t.Steps {
		if prev, exists := seen[step.Name]; exists {
			return walkthrougherrors.NewValidationError(fieldForStep(i, "name"),
				fmt.Sprintf("duplicate step name %q (first defined at steps[%d])", step.Name, prev), nil)
		}
		seen[step.Name] = i
	}

	if t.StartAt != "" {
		if _, ok := seen[t.StartAt]; !ok {
			return walkthrougherrors.NewValidationError("start_at", fmt.Sprintf("references unknown step %q", t.StartAt), nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return walkthrougherrors.NewValidationError(field, msg, err)
	}

	return walkthrougherrors.NewValidationError("tour", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts[1:] {
		lowered = append(lowered, strings.ToLower(part))
	}
	if len(lowered) == 0 {
		return strings.ToLower(ns)
	}
	return strings.Join(lowered, ".")
}

func fieldForStep(index int, field string) string {
	return fmt.Sprintf("steps[%d].%s", index, field)
}
