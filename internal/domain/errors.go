package domain

import "errors"

// Domain errors returned by the dispatch path. Handlers map these onto
// HTTP status classes; anything unwrapped is treated as internal.
var (
	// ErrValidation means the dispatch payload is missing required data.
	ErrValidation = errors.New("boss data is required")

	// ErrServiceUnavailable means the Slack connection is not established.
	ErrServiceUnavailable = errors.New("slack bot not connected")

	// ErrChannelNotFound means the target channel could not be resolved.
	ErrChannelNotFound = errors.New("slack channel not found")

	// ErrDispatchFailed means posting the announcement failed after
	// validation passed.
	ErrDispatchFailed = errors.New("failed to send boss notification")
)
