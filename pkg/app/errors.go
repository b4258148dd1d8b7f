package app

import "errors"

var (
	ErrUnknownInterface = errors.New("unknown interface")
)
