// Package common holds sentinel errors shared by the storage backends
// and the HTTP layer.
package common

import "errors"

var (

	// storage errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorInvalidID     = errors.New("invalid id")

	// request errors
	ErrorValidation = errors.New("validation error")

	// document-backend specific errors
	ErrorNotConnected = errors.New("not connected")
)
