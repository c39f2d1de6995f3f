package domain

import "errors"

var ErrValidation = errors.New("invalid input")
var ErrRoleNotRegistrable = errors.New("role not allowed for registration")
var ErrEmailTaken = errors.New("email already registered")
var ErrUsernameTaken = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrProfileNotFound = errors.New("profile not found")
var ErrJobNotFound = errors.New("job not found")
