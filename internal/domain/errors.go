package domain

import "errors"

var (
	ErrInvalidID    = errors.New("invalid id")
	ErrInvalidTitle = errors.New("invalid title")
	ErrNotFound     = errors.New("not found")
	ErrLastBoard    = errors.New("cannot delete the last board")
)
