package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func Validate(data interface{}) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(data)
}

// MissingFields lists the struct fields that failed validation, in the
// order validator reports them.
func MissingFields(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fields
}

var upper = cases.Upper(language.Und)

// UpperTrim trims s and upper-cases it with full Unicode case mapping, the
// normalization used for plate search.
func UpperTrim(s string) string {
	return upper.String(strings.TrimSpace(s))
}

// Upper upper-cases s without trimming.
func Upper(s string) string {
	return upper.String(s)
}
