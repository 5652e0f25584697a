package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

const greeting = "Hello, World!"

// root greets the identity admitted by the gate. It must only be mounted
// behind [Handler.auth]: a missing identity panics.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity := utils.MustIdentityFromContext(r.Context())
	log.Info().Str("display_name", identity.DisplayName).Msg("authorized request")

	if _, err := utils.WriteText(w, greeting, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing greeting")
	}
}
