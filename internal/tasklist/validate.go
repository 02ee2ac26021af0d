package tasklist

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tgienger/todolist/internal/models"
)

// Errors maps a draft field to the message shown under it
type Errors map[Field]string

// messages are keyed by field then by the failing validation tag
var messages = map[Field]map[string]string{
	FieldName: {
		"required": "Name is required.",
		"min":      "Name cannot be less than 2 characters.",
		"max":      "Name cannot exceed 60 characters.",
	},
	FieldDescription: {
		"min": "Description cannot be less than 2 characters.",
		"max": "Description cannot exceed 200 characters.",
	},
	FieldDueDate: {
		"duedate": "Time must look like 2025-12-31 23:59.",
		"notpast": "End date cannot be in the past.",
	},
	FieldStatus: {
		"required":   "Status is required.",
		"taskstatus": "The task status must be one of the following: ToDo, InProgress, Done.",
	},
}

// Validator checks drafts before they are submitted
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewValidator creates a validator. now supplies the instant due dates are compared against.
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{validate: validator.New(), now: now}

	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	v.validate.RegisterValidation("duedate", func(fl validator.FieldLevel) bool {
		_, err := ParseDue(fl.Field().String())
		return err == nil
	})
	v.validate.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		due, err := ParseDue(fl.Field().String())
		if err != nil {
			return false
		}
		return !due.Before(v.now())
	})
	v.validate.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
		return models.Status(fl.Field().String()).Valid()
	})

	return v
}

// Validate returns the errors of d. An empty result means the draft can be submitted.
func (v *Validator) Validate(d Draft) Errors {
	errs := Errors{}
	err := v.validate.Struct(d)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs[FieldName] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		field := Field(fe.Field())
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs[field] = msg
	}
	return errs
}
