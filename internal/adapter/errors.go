package adapter

import "errors"

// Sentinel errors mapped from directory API status codes.
var (
	ErrBadRequest          = errors.New("directory bad request")
	ErrUnauthorized        = errors.New("directory unauthorized")
	ErrForbidden           = errors.New("directory forbidden")
	ErrNotFound            = errors.New("directory resource not found")
	ErrConflict            = errors.New("directory conflict")
	ErrBadGateway          = errors.New("directory bad gateway")
	ErrInternalServerError = errors.New("directory internal server error")
)
