package driver

import "errors"

var (
	ErrDriverNotFound = errors.New("driver not found")
)
