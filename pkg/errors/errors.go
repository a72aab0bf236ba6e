package errors

import (
	"fmt"
)

var (
	ErrNoSession     = fmt.Errorf("no valid engine session")
	ErrSessionExists = fmt.Errorf("engine session already started")
	ErrQueueFull     = fmt.Errorf("task queue full")
	ErrTaskPending   = fmt.Errorf("client already has an outstanding task")
	ErrInvalidNode   = fmt.Errorf("invalid node id")
	ErrNotFound      = fmt.Errorf("not found")
	ErrStopped       = fmt.Errorf("stopped")
	ErrInvalidState  = fmt.Errorf("invalid state")
	ErrInvalidArg    = fmt.Errorf("invalid arg")
	ErrNotSupported  = fmt.Errorf("not supported")
)
