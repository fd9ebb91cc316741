package v1

import (
	"errors"
	"net/http"

	"github.com/spendwise/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errUserParameter   = errors.New("the user parameter must be set to a valid UUID")
	errPeriodInvalid   = errors.New("the period parameter must be MONTHLY or YEARLY")
	errDateRangeNotSet = errors.New("the from and to parameters must be set")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
