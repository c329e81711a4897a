package utils

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", ValidateUsernameRule)
	}
}

func ValidateUsernameRule(fl validator.FieldLevel) bool {
	return ValidateUsername(fl.Field().String())
}

// ValidateUsername accepts 3-20 characters of letters, digits, '-' and '_'.
// Usernames are primary keys in the users collection and appear in file-backed
// owner references, so no whitespace or punctuation.
func ValidateUsername(username string) bool {
	if len(username) < 3 || len(username) > 20 {
		return false
	}
	for _, char := range username {
		switch {
		case unicode.IsLetter(char) || unicode.IsNumber(char):
		case char == '-' || char == '_':
		default:
			return false
		}
	}
	return true
}
