package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrNameIsNotSpecified    = errors.New("application name is not specified")
)
