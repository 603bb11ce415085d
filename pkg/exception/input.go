package exception

import "errors"

var (
	ErrInputEmpty       = errors.New("input cannot be empty")
	ErrInputNotAllowed  = errors.New("input is not one of the allowed values")
	ErrInputNotNumber   = errors.New("input is not a number")
	ErrInputNotPositive = errors.New("input must be greater than zero")
	ErrInputTooLong     = errors.New("input is too long")
)
