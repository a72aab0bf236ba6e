package core

import (
	"time"
)

// Options configure the manager's frame loop.
type Options struct {
	// CookTimeLimit is the per-frame processing budget. Zero or less means no limit.
	CookTimeLimit time.Duration

	// AutoStartSession starts a session the first time a client needs one.
	AutoStartSession bool

	// CookingEnabled is the initial value of the host-wide cooking toggle.
	CookingEnabled bool

	// SessionSync means the engine session is shared with another application that
	// may cook our nodes.
	SessionSync bool

	// SyncWithEngineCook refreshes clients whose nodes were cooked by someone else
	// (requires SessionSync).
	SyncWithEngineCook bool

	// DisplayNotifications sends progress notifications while tasks run.
	DisplayNotifications bool

	Debug bool
}
