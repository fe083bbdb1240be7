package client

import "errors"

var (
	errNoServicesProvided = errors.New("no client services provided")
	errUnknownCommand     = errors.New("unknown command")
	errNotLoggedIn        = errors.New("not logged in")
	errUsage              = errors.New("usage")
)
