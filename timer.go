package panzoom

import "time"

// deadline is a one-shot callback scheduled on the input timeline. It never
// fires on its own: the owner calls fire with the current time from the
// input loop, which keeps every state change on a single goroutine.
type deadline struct {
	at    time.Duration
	armed bool
	fn    func(at time.Duration)
}

// start arms the deadline delay after now, replacing any pending one.
func (d *deadline) start(now, delay time.Duration, fn func(at time.Duration)) {
	d.at = now + delay
	d.armed = true
	d.fn = fn
}

// stop disarms the deadline. Reports whether it was pending.
func (d *deadline) stop() bool {
	was := d.armed
	d.armed = false
	d.fn = nil
	return was
}

// pending reports whether the deadline is armed.
func (d *deadline) pending() bool {
	return d.armed
}

// fire runs the callback if now has reached the deadline. The deadline is
// disarmed before the callback runs so it fires at most once.
func (d *deadline) fire(now time.Duration) bool {
	if !d.armed || now < d.at {
		return false
	}
	fn, at := d.fn, d.at
	d.stop()
	if fn != nil {
		fn(at)
	}
	return true
}
