package panzoom

import "time"

// tapRecognizer runs two independent detectors on single-contact touch
// gestures: double-tap (two releases within a window) and long-press (a
// stationary press held past a delay). Neither consumes input.
type tapRecognizer struct {
	window time.Duration
	delay  time.Duration

	lastRelease time.Duration
	hasRelease  bool
	pressTimer  deadline
}

// press arms the long-press timer for a lone contact and cancels it when
// the press adds a second contact.
func (t *tapRecognizer) press(now time.Duration, contacts int, onFire func(at time.Duration)) {
	if contacts != 1 {
		t.pressTimer.stop()
		return
	}
	t.pressTimer.start(now, t.delay, onFire)
}

// move disqualifies the pending long-press. Reports whether one was pending.
func (t *tapRecognizer) move() bool {
	return t.pressTimer.stop()
}

// release cancels the long-press and classifies the release. tap is false
// for releases that cannot count toward a double-tap (multi-contact
// gestures or contacts that travelled). Reports whether this release
// completes a double-tap.
func (t *tapRecognizer) release(now time.Duration, tap bool) bool {
	t.pressTimer.stop()
	if !tap {
		t.hasRelease = false
		return false
	}
	if t.hasRelease && now-t.lastRelease < t.window {
		t.hasRelease = false
		return true
	}
	t.lastRelease = now
	t.hasRelease = true
	return false
}

// tick fires the long-press callback when due.
func (t *tapRecognizer) tick(now time.Duration) bool {
	return t.pressTimer.fire(now)
}

// cancel stops the timer and forgets the previous release.
func (t *tapRecognizer) cancel() {
	t.pressTimer.stop()
	t.hasRelease = false
}
