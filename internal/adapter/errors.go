package adapter

import "errors"

var (
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrBadRequest           = errors.New("bad request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrUnprocessableEntity  = errors.New("unprocessable entity")
	ErrUnexpectedStatus     = errors.New("unexpected response status")
)
