// Package apierror turns service errors into huma status errors.
package apierror

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbox-server/internal/apperr"
	"github.com/carson-networks/cashbox-server/internal/logging"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindInvalidPeriod:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// From builds the response error for err. Client errors carry their own message;
// everything else is reported as fallback with the cause recorded in the request log.
func From(ctx context.Context, err error, fallback string) error {
	status := StatusFor(err)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
	}

	var appErr *apperr.Error
	if status < http.StatusInternalServerError && errors.As(err, &appErr) {
		return huma.NewError(status, appErr.Message)
	}
	return huma.NewError(status, fallback)
}
