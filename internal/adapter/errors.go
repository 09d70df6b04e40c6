package adapter

import "errors"

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrValidation          = errors.New("request validation failed")
	ErrInternalServerError = errors.New("internal server error")
)
