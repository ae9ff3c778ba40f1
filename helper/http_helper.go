package helper

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error responses share one shape: a human-readable detail string, plus a
// per-field breakdown for validation failures.

// SendDetail writes a structured error body with the given status code.
func SendDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// SendValidationError writes a 422 for a request that failed binding. Field
// constraint violations are broken out per field; anything else (malformed
// JSON, type mismatches) is reported as-is.
func SendValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[Underscore(fe.Field())] = fieldMessage(fe)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Validation failed",
			"errors": fields,
		})
		return
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}

// Underscore converts a struct field name to its snake_case JSON form.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			// Don't split runs of capitals (URL, DOB, ID).
			if i > 0 && !unicode.IsUpper(rune(s[i-1])) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
