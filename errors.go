package mimemap

import "errors"

var (
	ErrIncorrectMagic   = errors.New("mimemap: incorrect magic")
	ErrIncorrectVersion = errors.New("mimemap: incorrect version")
	ErrBufferTooSmall   = errors.New("mimemap: buffer too small")
	ErrCountConversion  = errors.New("mimemap: count conversion failed")
	ErrFileCreate       = errors.New("mimemap: file creation failed")
	ErrFileWrite        = errors.New("mimemap: file write failed")
	ErrLimitExceeded    = errors.New("mimemap: limit exceeded")
	ErrValidation       = errors.New("mimemap: validation failed")
	ErrInvalidMap       = errors.New("mimemap: invalid map")
	ErrSectorIndex      = errors.New("mimemap: sector index out of range")
)
