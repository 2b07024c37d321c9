package service

import "errors"

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrAccessDenied     = errors.New("access denied")

	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("fitness profile not found")

	ErrProgramNotFound         = errors.New("training program not found")
	ErrSessionNotFound         = errors.New("training session not found")
	ErrSessionAlreadyCompleted = errors.New("training session already completed")
	ErrNoTemplateAvailable     = errors.New("no template can be recommended for this profile")

	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseAccessDenied = errors.New("access denied to modify or delete this exercise")

	ErrClientNotFound        = errors.New("client user not found")
	ErrClientNotRole         = errors.New("user found but is not a client")
	ErrClientAlreadyAssigned = errors.New("client is already assigned to a coach")
	ErrClientNotManaged      = errors.New("client is not managed by this coach")

	ErrFriendNotFound   = errors.New("no user with this email")
	ErrCannotFriendSelf = errors.New("cannot add yourself as a friend")
	ErrAlreadyFriends   = errors.New("already friends")
)
