package platform

import "time"

// Platform owns the window (if any) and feeds OS input into the core input
// state. Every method is called from the frame thread.
type Platform interface {
	Startup(applicationName string, x, y, width, height uint32) error
	Shutdown() error
	// PumpMessages processes pending OS events. Returns false once the
	// platform wants the application to close.
	PumpMessages() bool
	// GetAbsoluteTime returns seconds from an arbitrary fixed point.
	GetAbsoluteTime() float64
	Sleep(ms float64)
}

func sleepMS(ms float64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms * float64(time.Millisecond)))
}
