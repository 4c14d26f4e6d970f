package dialog

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var (
	phonePattern = regexp.MustCompile(`^\+7\d{10}$`)
	groupPattern = regexp.MustCompile(`^[А-ЯA-Z]{2,3}-\d{2,3}$`)
)

func validEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

func validPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func validGroup(s string) bool {
	return groupPattern.MatchString(s)
}

func minRunes(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}
