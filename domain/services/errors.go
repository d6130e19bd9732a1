package services

import "errors"

// Domain errors - handler แปลงเป็น HTTP status ผ่าน response helpers
var (
	ErrEmailTaken        = errors.New("user already exists")
	ErrDuplicateEmail    = errors.New("duplicate field value entered")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrWrongPassword     = errors.New("current password is incorrect")
	ErrUserNotFound      = errors.New("user not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrNotOwner          = errors.New("not the task owner")
)
