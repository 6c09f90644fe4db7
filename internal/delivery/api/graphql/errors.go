package graphql

import (
	"context"
	"log/slog"
	"net/http"

	"rentql/internal/delivery/api/response"
	deliverycontext "rentql/internal/delivery/context"
	domainerrors "rentql/internal/domain/errors"
	"rentql/internal/errors"
)

// operationError is a GraphQL error carrying the business code in its extensions.
type operationError struct {
	code    string
	status  int
	message string
	details string
}

func (e *operationError) Error() string {
	return e.message
}

// Extensions is read by graphql-go when rendering the error.
func (e *operationError) Extensions() map[string]any {
	ext := map[string]any{
		"code":   e.code,
		"status": e.status,
	}
	if e.details != "" {
		ext["details"] = e.details
	}

	return ext
}

// fail converts a use case error into an operation error. Unknown errors are logged and hidden.
func (r *Resolver) fail(ctx context.Context, err error) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("GraphQL operation failed", slog.Any("error", err))
		}

		opErr := &operationError{
			code:    appErr.ErrorCode(),
			status:  appErr.HTTPCode(),
			message: appErr.Message(),
		}
		if response.ExposeDetails(appErr.HTTPCode()) {
			opErr.details = appErr.Details()
		}

		return opErr
	}

	logger.Error("Unhandled GraphQL operation error", slog.Any("error", err))

	return &operationError{
		code:    domainerrors.ErrInternalError.ErrorCode(),
		status:  http.StatusInternalServerError,
		message: domainerrors.ErrInternalError.Message(),
	}
}
