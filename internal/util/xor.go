package util

import "errors"

var ErrByteLengthMissMatch = errors.New("provided bytes do not have the same length for XOR operations")
