package models

import (
	"log"
	"regexp"

	"github.com/Daskott/postbook/server/errs"
	"github.com/go-playground/validator"
)

const (
	msgRequiredFieldsMissing = "Required fields are missing."
	msgInvalidPhone          = "Invalid phone number."
	msgInvalidEmail          = "Invalid email address."
	msgInvalidName           = "Invalid name."
	msgInvalidAddress        = "Invalid address."
)

// Whitespace as JavaScript regexps see it: ASCII space and control
// whitespace including \v, every Unicode space separator, the line and
// paragraph separators and the byte order mark.
const whitespace = `\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	phoneNumberRegex = regexp.MustCompile(`^\d{10}$`)
	emailRegex       = regexp.MustCompile(`^[^@` + whitespace + `]+@.+$`)
	nameRegex        = regexp.MustCompile(`^[A-Za-z` + whitespace + `]+$`)
	addressRegex     = regexp.MustCompile(`^[A-Za-z0-9` + whitespace + `]+$`)

	// Checked in order after presence; the first failure is reported.
	fieldRules = []struct {
		field   string
		tag     string
		message string
	}{
		{FieldPhone, "ten_digit_phone", msgInvalidPhone},
		{FieldPersonalEmail, "personal_email", msgInvalidEmail},
		{FieldName, "alpha_space", msgInvalidName},
		{FieldAddress, "alphanum_space", msgInvalidAddress},
	}

	validate = newValidator()
)

// Validate checks that every required field is present and that the
// formatted fields are well formed. Values are never trimmed or normalized.
func Validate(post Post) error {
	for _, field := range requiredFields {
		if !post.Has(field) {
			return errs.NewValidationError(msgRequiredFieldsMissing)
		}
	}

	for _, rule := range fieldRules {
		if err := validate.Var(post.StringValue(rule.field), rule.tag); err != nil {
			return errs.NewValidationError(rule.message)
		}
	}

	return nil
}

// ValidateEmail applies only the personal email format rule.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "personal_email"); err != nil {
		return errs.NewValidationError(msgInvalidEmail)
	}
	return nil
}

func RegisterValidators(validate *validator.Validate) error {
	patterns := map[string]*regexp.Regexp{
		"ten_digit_phone": phoneNumberRegex,
		"personal_email":  emailRegex,
		"alpha_space":     nameRegex,
		"alphanum_space":  addressRegex,
	}

	for tag, pattern := range patterns {
		pattern := pattern
		err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(fl.Field().String())
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		log.Panic(err)
	}
	return v
}
