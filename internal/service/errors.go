package service

import "errors"

var (
	ErrCredentialMismatch  = errors.New("credential does not match")
	ErrVerificationTimeout = errors.New("credential verification timed out")

	ErrInvalidConfig         = errors.New("invalid service configuration")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
