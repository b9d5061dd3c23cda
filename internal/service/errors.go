package service

import "errors"

// ErrForbidden is returned when the acting user's role is not in the
// capability table for the attempted action.
var ErrForbidden = errors.New("action not permitted for role")
