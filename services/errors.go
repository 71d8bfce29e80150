package services

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrMealNotFound        = errors.New("meal not found")
	ErrInvalidMealType     = errors.New("meal type must be breakfast, lunch or dinner")
	ErrNotAnImage          = errors.New("upload a valid image")
	ErrRecognitionDisabled = errors.New("food recognition is not enabled")
)
