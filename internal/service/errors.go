package service

import "errors"

var (
	ErrTitleRequired = errors.New("title must not be empty")
	ErrBodyRequired  = errors.New("body must not be empty")
	ErrNotFound      = errors.New("resource not found")
	ErrForbidden     = errors.New("not allowed to modify this resource")
)
