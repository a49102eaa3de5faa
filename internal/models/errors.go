package models

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotAllowed   = errors.New("file type is not allowed")
)
