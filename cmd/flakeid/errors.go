package main

import (
	"errors"
)

var (
	ErrInvalidMachineID = errors.New("machine id must be between 0 and 1023")
	ErrInvalidID        = errors.New("not a valid id")
	ErrUnknownEncoding  = errors.New("unknown encoding")
	ErrUnknownOutput    = errors.New("unknown output format")
	ErrInvalidCount     = errors.New("count must be at least 1")
	ErrInvalidCQL       = errors.New("CQL version must be between 2 and 4")
)
