package hardware

import (
	"testing"
	"time"

	"github.com/jetsetilly/sparkler/test"
)

func TestLimiter(t *testing.T) {
	l := newLimiter(100)
	defer l.stop()

	start := time.Now()
	for range 5 {
		l.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)

	l.SetRate(200)
	test.ExpectEquality(t, l.hz, 200.0)

	// invalid rates are ignored
	l.SetRate(0)
	test.ExpectEquality(t, l.hz, 200.0)
}
