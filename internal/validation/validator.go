package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"quiz-zone/internal/domain"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Validator checks struct tags and reports failures as domain.ValidationErrors
// keyed by JSON field path.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the project's custom rules:
//
//	slug            lowercase letters, digits and hyphens
//	event_category  one of domain.EventCategories
//	option_index    int pointing into the sibling Options slice
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("event_category", func(fl validator.FieldLevel) bool {
		return domain.EventCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("option_index", validOptionIndex)

	return &Validator{validate: v}
}

func validOptionIndex(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	options := parent.FieldByName("Options")
	if !options.IsValid() || options.Kind() != reflect.Slice {
		return false
	}
	idx := int(fl.Field().Int())
	return idx >= 0 && idx < options.Len()
}

// Struct validates s and returns nil or domain.ValidationErrors.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewInternalError("validation failed", err)
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, domain.ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return out
}

// HoroscopeDay requires a reading for every sign and validates each one.
func (v *Validator) HoroscopeDay(day domain.GeneratedHoroscopeDay) error {
	var out domain.ValidationErrors
	for _, info := range domain.ZodiacSigns {
		reading, ok := day[info.Sign]
		if !ok {
			out = append(out, domain.ValidationError{Field: string(info.Sign), Message: "is required"})
			continue
		}
		if err := v.Struct(reading); err != nil {
			var errs domain.ValidationErrors
			if !errors.As(err, &errs) {
				return err
			}
			for _, e := range errs {
				e.Field = string(info.Sign) + "." + e.Field
				out = append(out, e)
			}
		}
	}
	for sign := range day {
		if _, ok := sign.Info(); !ok {
			out = append(out, domain.ValidationError{Field: string(sign), Message: "is not a zodiac sign"})
		}
	}
	if len(out) > 0 {
		return out
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	unit := ""
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unit)
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "slug":
		return "must contain only lowercase letters, numbers, and hyphens"
	case "event_category":
		return "is not a known event category"
	case "option_index":
		return "must point to one of the options"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
