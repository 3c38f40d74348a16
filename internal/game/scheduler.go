package game

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback if it has not fired yet.
	Stop() bool
}

// Scheduler schedules the delayed steps of a resolution sequence. The server
// uses wall-clock time; tests substitute a virtual-time implementation so
// they never sleep.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type wallScheduler struct{}

func (wallScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// NewWallScheduler returns a Scheduler backed by time.AfterFunc.
func NewWallScheduler() Scheduler {
	return wallScheduler{}
}
