package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"riskdesk/internal/delivery/http/dto"
	"riskdesk/internal/domain"
)

// ErrorBody is the structured error response shape.
type ErrorBody struct {
	Status  int              `json:"status"`
	Message string           `json:"message,omitempty"`
	Errors  []dto.FieldError `json:"errors,omitempty"`
}

// ErrorResponse sends an error response with a single message
func ErrorResponse(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Status: statusCode, Message: message})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, message)
}

// ValidationErrorResponse sends a 400 response carrying field-level detail
func ValidationErrorResponse(c echo.Context, errs []dto.FieldError) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{Status: http.StatusBadRequest, Errors: errs})
}

// WriteError maps a service error onto the HTTP error taxonomy. Every error
// produces a response; nothing is swallowed.
func WriteError(c echo.Context, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorBody{
			Status: http.StatusBadRequest,
			Errors: []dto.FieldError{{Field: ve.Field, Message: ve.Message}},
		})
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return ErrorResponse(c, http.StatusNotFound, nf.Error())
	}

	var us *domain.UnknownStatusError
	if errors.As(err, &us) {
		return ErrorResponse(c, http.StatusUnprocessableEntity, us.Error())
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return ErrorResponse(c, http.StatusConflict, conflict.Error())
	}

	log.Printf("[ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}
