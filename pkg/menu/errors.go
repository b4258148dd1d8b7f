package menu

import "errors"

var (
	ErrUnknownLogType = errors.New("unrecognized log type")
	ErrUnknownChoice  = errors.New("unrecognized menu choice")
)
