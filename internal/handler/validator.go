package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/argguild/epgpbot/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// GetValidator returns the shared validator, registering the domain tags on first use
func GetValidator() *Validator {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("point_type", validateParsed(domain.ParsePointType))
		_ = v.RegisterValidation("bid_tier", validateParsed(domain.ParseBidTier))
		_ = v.RegisterValidation("raid_zone", validateParsed(domain.ParseRaidZone))
		_ = v.RegisterValidation("char_class", validateParsed(domain.ParseCharacterClass))
		_ = v.RegisterValidation("role", validateParsed(domain.ParseRole))
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateParsed adapts a domain parser to a field validator. Empty values
// pass so that optional fields only need the tag.
func validateParsed[T any](parse func(string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := parse(s)
		return err == nil
	}
}

// FormatValidationError formats validation errors into a map keyed by field
// name, without leaking Go struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgInvalidRequestSummary
		return errs
	}

	for _, e := range validationErrors {
		field := toSnake(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lt":
			errs[field] = fmt.Sprintf("Must be less than %s", e.Param())
		case "point_type":
			errs[field] = "Must be EP or GP"
		case "bid_tier":
			errs[field] = "Must be upgrade, sidegrade or offspec"
		case "raid_zone":
			errs[field] = "Unknown raid zone"
		case "char_class":
			errs[field] = "Unknown character class"
		case "role":
			errs[field] = "Unknown role"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// toSnake turns a Go field name such as TeamID into team_id
func toSnake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
