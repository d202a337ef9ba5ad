package repository

import "errors"

var (
	ErrCorruptCache = errors.New("holiday cache is corrupt")
)
