package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var fieldLabels = map[string]string{
	"UserID":              "user ID",
	"Title":               "title",
	"Description":         "description",
	"TargetMinutesPerDay": "target minutes",
	"StartDate":           "start date",
	"Tags":                "tag",
	"GoalID":              "goal ID",
	"Date":                "date",
	"MinutesSpent":        "minutes spent",
	"Note":                "note",
}

// ValidationError lists every rule a record violates.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Problems = append(ve.Problems, describeFieldError(fe))
	}
	return ve
}

func describeFieldError(fe validator.FieldError) string {
	name := fe.StructField()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	label, ok := fieldLabels[name]
	if !ok {
		label = strings.ToLower(name)
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "gte":
		switch fe.Param() {
		case "0":
			return label + " must be non-negative"
		case "1":
			return label + " must be positive"
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", label, fe.Tag())
	}
}
