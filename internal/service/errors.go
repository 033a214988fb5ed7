package service

import "errors"

var (
	// Villa errors
	ErrVillaNotFound = errors.New("villa not found")
	ErrValidation    = errors.New("validation failed")
)
