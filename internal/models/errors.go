package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Errors for unique constraints, set by the create and update callbacks.
var (
	ErrUserEmailNotUnique    = errors.New("a user with this email address already exists")
	ErrTeamNameNotUnique     = errors.New("a team with this name already exists")
	ErrTeamMemberNotUnique   = errors.New("this user already is a member of the team")
	ErrCategoryNameNotUnique = errors.New("you already have a category with this name")
)
