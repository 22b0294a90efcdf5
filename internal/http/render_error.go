package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dhi-labs/recruit-api/internal/core"
	apperrors "github.com/dhi-labs/recruit-api/internal/errors"
)

// RenderError maps a service error onto an HTTP error response. Typed
// application errors carry their own category; raw database errors go
// through MapDBError first; anything left is a 500 with a generic body so
// driver details never leak to clients.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		if isNotFoundSentinel(err) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
			return
		}
		mapped := apperrors.MapDBError(err)
		if !errors.As(mapped, &appErr) {
			slog.ErrorContext(r.Context(), "unhandled error", "error", err, "path", r.URL.Path)
			WriteError(w, ErrorParams{
				Code:    http.StatusInternalServerError,
				ErrCode: "internal",
				Err:     errors.New("internal server error"),
			})
			return
		}
	}

	code := statusForCode(appErr.Code)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "internal error", "error", err, "path", r.URL.Path)
	}
	// Only the app-level message goes on the wire; the cause chain stays in
	// the logs.
	WriteError(w, ErrorParams{
		Code:    code,
		ErrCode: string(appErr.Code),
		Err:     errors.New(appErr.Message),
		Field:   appErr.Field,
	})
}

func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict, apperrors.ErrCodeForeignKey:
		return http.StatusConflict
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeCanceled:
		// The client went away; 499 is conventional but not in net/http.
		return 499
	default:
		return http.StatusInternalServerError
	}
}

func isNotFoundSentinel(err error) bool {
	return errors.Is(err, core.ErrApplicationNotFound) ||
		errors.Is(err, core.ErrCandidateNotFound) ||
		errors.Is(err, core.ErrJobNotFound) ||
		errors.Is(err, core.ErrUserNotFound)
}
