package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, recon.ErrInvalidPeriod):
		BadRequest(w, "Invalid period key", nil)
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
