package handlers

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/apperrors"
)

// ServiceError maps an error returned by the service layer to a Huma error.
// Validation failures become 400s with one detail per field.
func ServiceError(msg string, err error) error {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		return huma.NewError(http.StatusBadRequest, msg, validationDetails(vErr)...)
	case errors.Is(err, apperrors.ErrInvalidMonth):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.Is(err, apperrors.ErrOperatorStopped),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusServiceUnavailable, msg, err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}

func validationDetails(vErr *apperrors.ValidationError) []error {
	fields := make([]string, 0, len(vErr.Fields))
	for field := range vErr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]error, len(fields))
	for i, field := range fields {
		details[i] = &huma.ErrorDetail{
			Location: "body." + field,
			Message:  vErr.Fields[field],
		}
	}
	return details
}
