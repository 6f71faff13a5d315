package services

import "errors"

var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrForbidden      = errors.New("board belongs to another user")
)
