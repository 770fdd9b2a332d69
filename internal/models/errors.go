package models

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidInput    = errors.New("invalid input")
)
