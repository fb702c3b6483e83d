package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// GenericErrorMessage is the only wording data-access failures surface to the
// end user; the real cause goes to the log.
const GenericErrorMessage = "Something went wrong"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFieldErrors reports a validation failure with per-field messages.
func JSONFieldErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Validation failed", "fields": fields})
}

// BindValidationErrors flattens a gin binding error into field -> message.
// Non-validator errors (malformed JSON and the like) map to a single
// "_body" entry.
func BindValidationErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_body"] = "Invalid request payload"
		return fields
	}

	for _, fe := range verrs {
		name := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "This field is required"
		case "email":
			fields[name] = "Must be a valid email address"
		case "min":
			fields[name] = "Value is below the allowed minimum"
		case "max":
			fields[name] = "Value is above the allowed maximum"
		case "gt":
			fields[name] = "Must be greater than " + fe.Param()
		case "gte":
			fields[name] = "Must be at least " + fe.Param()
		case "eqfield":
			fields[name] = "Passwords need to match"
		case "oneof":
			fields[name] = "Must be one of: " + fe.Param()
		default:
			fields[name] = "Invalid value"
		}
	}
	return fields
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
