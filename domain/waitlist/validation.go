package waitlist

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const emailFormatTag = "waitlist_email"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmailFormat is the loose local@domain.tld check applied on the
// relational path. It is a pure function of its input.
func ValidateEmailFormat(email string) bool {
	return emailPattern.MatchString(email)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(emailFormatTag, func(fl validator.FieldLevel) bool {
		return ValidateEmailFormat(fl.Field().String())
	})

	return v
}
