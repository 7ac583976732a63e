package platform

import (
	"time"

	"github.com/spaghettifunk/vitrum/engine/core"
)

// FnPointerPath returns the normalized pointer position at t seconds.
type FnPointerPath func(t float64) (float32, float32)

// Headless runs without a window. An optional PointerPath stands in for the
// mouse so the follow behaviour can be watched in the logs.
type Headless struct {
	PointerPath FnPointerPath

	now   func() time.Time
	start time.Time
	up    bool
}

func NewHeadless(path FnPointerPath) *Headless {
	return &Headless{PointerPath: path, now: time.Now}
}

func (p *Headless) Startup(applicationName string, x, y, width, height uint32) error {
	p.start = p.now()
	p.up = true
	core.LogInfo("Starting %s without a window (%dx%d).", applicationName, width, height)
	return nil
}

func (p *Headless) Shutdown() error {
	p.up = false
	return nil
}

func (p *Headless) PumpMessages() bool {
	if !p.up {
		return false
	}
	if p.PointerPath != nil {
		x, y := p.PointerPath(p.GetAbsoluteTime())
		if err := core.InputProcessPointer(x, y); err != nil {
			core.LogWarn(err.Error())
		}
	}
	return true
}

func (p *Headless) GetAbsoluteTime() float64 {
	return p.now().Sub(p.start).Seconds()
}

func (p *Headless) Sleep(ms float64) {
	sleepMS(ms)
}
