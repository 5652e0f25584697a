package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/service"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	ErrUnsupportedMediaType: http.StatusUnsupportedMediaType,
	ErrMalformedJSON:        http.StatusBadRequest,
	ErrInvalidJSONData:      http.StatusUnprocessableEntity,
	ErrRequestBodyTooLarge:  http.StatusRequestEntityTooLarge,

	service.ErrCredentialMismatch:  http.StatusUnauthorized,
	service.ErrVerificationTimeout: http.StatusUnauthorized,
	service.ErrInvalidConfig:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// rejectionReason names the cause of a gate rejection for the logs.
// The reason never reaches the client.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrEmptyAuthorizationHeader):
		return "missing_header"
	case errors.Is(err, ErrInvalidAuthorizationHeader):
		return "invalid_header"
	case errors.Is(err, service.ErrCredentialMismatch):
		return "credential_mismatch"
	case errors.Is(err, service.ErrVerificationTimeout):
		return "verification_timeout"
	default:
		return "unknown"
	}
}
