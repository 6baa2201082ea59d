package utils

import (
	"ccsed-client/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	phoneDigitsRegex = regexp.MustCompile(constvars.RegexPhoneDigits)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("attention_type", validateAttentionType)
	validate.RegisterValidation("phone_digits", validatePhoneDigits)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAttentionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.AttentionTypeInPerson || value == constvars.AttentionTypeVirtual
}

func validatePhoneDigits(fl validator.FieldLevel) bool {
	return phoneDigitsRegex.MatchString(fl.Field().String())
}
