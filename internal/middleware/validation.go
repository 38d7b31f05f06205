package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/coursegraph/internal/app/models/dto"
)

var validate = validator.New()

// ValidatedBodyKey is the context key under which ValidateRequest stores
// the bound request body.
const ValidatedBodyKey = "validatedBody"

// ValidateRequest binds the JSON body into a fresh value from newBody,
// validates it, and stores it in the context for the handler.
func ValidateRequest(newBody func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newBody()
		if err := c.ShouldBindJSON(obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
			errorDetail = errorDetail.WithDetails(err.Error())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		if err := validate.Struct(obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
			var fieldErrors validator.ValidationErrors
			if errors.As(err, &fieldErrors) {
				details := dto.NewValidationErrors()
				for _, fe := range fieldErrors {
					details.AddError(fe.Field(), formatValidationError(fe))
				}
				errorDetail = errorDetail.WithDetails(details)
			}
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		c.Set(ValidatedBodyKey, obj)
		c.Next()
	}
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
