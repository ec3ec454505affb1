package server

import "errors"

var (
	errMissingHTTPAddress = errors.New("http address is not configured")
)
