package meeting

import "errors"

var (
	ErrMissingField    = errors.New("missing required field")
	ErrMeetingNotFound = errors.New("meeting not found or inactive")
	ErrInvalidPassword = errors.New("invalid password")
	ErrNotAuthorized   = errors.New("not authorized")
)
