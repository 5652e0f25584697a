package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

const authorizationHeader = "Authorization"

// auth is the authorization gate in front of protected routes.
//
// It reads the raw "Authorization" header value as the credential, asks
// [service.AuthService.Authorize] for a verdict and, on success, stores the
// returned identity in the request context via [utils.WithIdentity] before
// delegating to the next handler.
//
// Every rejection is answered with HTTP 401 Unauthorized and an empty body:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//     No verification is started.
//   - The header value is not visible ASCII text ([ErrInvalidAuthorizationHeader]).
//     No verification is started.
//   - The verifier rejected the credential or did not answer in time.
//
// The cause is logged with a "reason" field through the request-scoped logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		credential, err := credentialFromHeader(r.Header)
		if err != nil {
			log.Warn().Err(err).Str("reason", rejectionReason(err)).Msg("request rejected")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Authorize(ctx, credential)
		if err != nil {
			log.Warn().Err(err).Str("reason", rejectionReason(err)).Msg("request rejected")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx = utils.WithIdentity(ctx, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// credentialFromHeader returns the first "Authorization" value verbatim.
// A present but empty value is a valid credential; no scheme is stripped.
func credentialFromHeader(header http.Header) (string, error) {
	values, ok := header[authorizationHeader]
	if !ok || len(values) == 0 {
		return "", ErrEmptyAuthorizationHeader
	}

	credential := values[0]
	for i := 0; i < len(credential); i++ {
		if c := credential[i]; c != '\t' && (c < 0x20 || c > 0x7e) {
			return "", ErrInvalidAuthorizationHeader
		}
	}

	return credential, nil
}
