package api

import (
	"time"
)

const (
	defCookTimeLimit    = 1 * time.Second
	defInitialQueueSize = 16
)

// Options passed to the cooker Service on creation
type Options struct {
	// CookTimeLimit is how long a frame may spend advancing asset clients.
	// Zero or less means no limit.
	CookTimeLimit time.Duration

	// InitialQueueSize is the starting capacity of the task queue.
	InitialQueueSize int

	// MaxQueueSize is the most tasks that may wait for the worker. 0 means no limit.
	MaxQueueSize int

	// IdleInterval is how long the worker sleeps when there is nothing to do.
	IdleInterval time.Duration

	// SpinInterval is how long the worker sleeps between engine cook state checks.
	SpinInterval time.Duration

	// StatusInterval is how often a running task's status text is refreshed.
	StatusInterval time.Duration

	// AutoStartSession starts an engine session the first time one is needed.
	AutoStartSession bool

	// CookingEnabled is the initial state of the host-wide cooking toggle.
	CookingEnabled bool

	// SessionSync is set when the engine session is shared with another application.
	SessionSync bool

	// SyncWithEngineCook refreshes assets cooked by the other application.
	SyncWithEngineCook bool

	// DisplayNotifications sends task progress notifications.
	DisplayNotifications bool

	// Debug turns on verbose per-frame & per-task logging.
	Debug bool
}

// OptionsDefault returns options for a service that starts its own session & cooks
// as soon as assets change.
func OptionsDefault() *Options {
	return &Options{
		CookTimeLimit:        defCookTimeLimit,
		InitialQueueSize:     defInitialQueueSize,
		AutoStartSession:     true,
		CookingEnabled:       true,
		DisplayNotifications: true,
	}
}
