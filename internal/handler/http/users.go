package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := decodeCreateUserRequest(r)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("invalid create user request")
		http.Error(w, err.Error(), status)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user creation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing created user")
	}
}

// decodeCreateUserRequest reads a JSON body into [models.CreateUserRequest].
//
// It returns:
//   - [ErrUnsupportedMediaType] when Content-Type is not application/json
//     or an application/*+json type.
//   - [ErrRequestBodyTooLarge] when the body exceeds the size limit.
//   - [ErrMalformedJSON] when the body is empty, not valid JSON or not
//     valid UTF-8.
//   - [ErrInvalidJSONData] when the JSON is valid but is not an object with
//     exactly one string "username" field.
func decodeCreateUserRequest(r *http.Request) (models.CreateUserRequest, error) {
	if !isJSONContentType(r.Header.Get("Content-Type")) {
		return models.CreateUserRequest{}, ErrUnsupportedMediaType
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return models.CreateUserRequest{}, fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
		}
		return models.CreateUserRequest{}, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	if !utf8.Valid(body) {
		return models.CreateUserRequest{}, fmt.Errorf("%w: invalid UTF-8", ErrMalformedJSON)
	}
	if !json.Valid(body) {
		return models.CreateUserRequest{}, ErrMalformedJSON
	}

	raw, err := usernameField(body)
	if err != nil {
		return models.CreateUserRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSONData, err)
	}

	var username *string
	if err = json.Unmarshal(raw, &username); err != nil {
		return models.CreateUserRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSONData, err)
	}
	if username == nil {
		return models.CreateUserRequest{}, fmt.Errorf("%w: `username` is null", ErrInvalidJSONData)
	}

	return models.CreateUserRequest{Username: *username}, nil
}

// usernameField returns the raw value of the top-level "username" key of a
// syntactically valid JSON document. Keys match case-sensitively and the
// key must appear exactly once.
func usernameField(body []byte) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var username json.RawMessage
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}

		var value json.RawMessage
		if err = dec.Decode(&value); err != nil {
			return nil, err
		}

		if key, _ := tok.(string); key == "username" {
			if username != nil {
				return nil, errors.New("duplicate field `username`")
			}
			username = value
		}
	}

	if username == nil {
		return nil, errors.New("missing field `username`")
	}
	return username, nil
}

func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	if mediaType == "application/json" {
		return true
	}

	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}
