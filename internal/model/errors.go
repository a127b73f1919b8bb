package model

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrUnknownType = errors.New("unknown property type")
)
