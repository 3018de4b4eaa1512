// Package validation checks incoming payloads per resource and reports
// problems as a field name to message mapping. Validators never fail with an
// error themselves; callers branch on the validity flag and echo the mapping
// verbatim as the error response body.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

func isURL(s string) bool {
	return validate.Var(s, "url") == nil
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}
