package gateway

import "errors"

var (
	// ErrInvalidArgument indicates an out-of-range or malformed command
	// argument, detected before any network call is made
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedCapability indicates a command was requested for a
	// capability the target device does not expose
	ErrUnsupportedCapability = errors.New("capability not supported by device")
)
