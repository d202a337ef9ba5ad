package repository

import "errors"

var (
	ErrCorruptBoard   = errors.New("stored board cannot be decoded")
	ErrFailedToLoad   = errors.New("failed to load board")
	ErrFailedToEncode = errors.New("failed to encode board")
)
