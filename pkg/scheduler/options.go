package scheduler

import (
	"time"
)

const (
	defIdleInterval   = 10 * time.Millisecond
	defSpinInterval   = 1 * time.Millisecond
	defStatusInterval = 500 * time.Millisecond
)

// Options for the task scheduler.
type Options struct {
	// InitialQueueSize is the starting capacity of the task queue (rounded up to a power of two).
	InitialQueueSize int

	// MaxQueueSize is the most tasks the queue will hold. 0 means no limit.
	MaxQueueSize int

	// IdleInterval is how long the worker sleeps when there is nothing to do.
	IdleInterval time.Duration

	// SpinInterval is how long the worker sleeps between cook state checks.
	SpinInterval time.Duration

	// StatusInterval is how often a Working info is republished while waiting on the engine.
	StatusInterval time.Duration

	// Debug enables per-task logging.
	Debug bool
}

func (o *Options) setDefaults() {
	if o.InitialQueueSize <= 0 {
		o.InitialQueueSize = defInitialQueueSize
	}
	if o.IdleInterval <= 0 {
		o.IdleInterval = defIdleInterval
	}
	if o.SpinInterval <= 0 {
		o.SpinInterval = defSpinInterval
	}
	if o.StatusInterval <= 0 {
		o.StatusInterval = defStatusInterval
	}
}
