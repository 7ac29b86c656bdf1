package hardware

import (
	"time"
)

type limiter struct {
	tick *time.Ticker
	hz   float64
}

func newLimiter(hz float64) *limiter {
	l := &limiter{}
	l.SetRate(hz)
	return l
}

// SetRate changes the rate at which Wait() returns. the rate changes when the
// chipset switches between television standards
func (l *limiter) SetRate(hz float64) {
	if hz <= 0 || hz == l.hz {
		return
	}
	l.hz = hz

	d := time.Duration(float64(time.Second) / hz)
	if l.tick == nil {
		l.tick = time.NewTicker(d)
	} else {
		l.tick.Reset(d)
	}
}

func (l *limiter) Wait() {
	if l.tick == nil {
		return
	}
	<-l.tick.C
}

func (l *limiter) stop() {
	if l.tick != nil {
		l.tick.Stop()
	}
}
