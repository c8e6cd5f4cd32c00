package main

import (
	"time"

	"github.com/younwookim/runway/internal/application/system"
)

// holdTimeout is how long a movement key counts as held after its last
// press or auto-repeat. Terminals report no key-up events.
const holdTimeout = 150 * time.Millisecond

// holdTracker turns a stream of key-repeat events into key-down/key-up
// intents for the world.
type holdTracker struct {
	timeout time.Duration
	last    map[system.Key]time.Time
}

func newHoldTracker(timeout time.Duration) *holdTracker {
	return &holdTracker{
		timeout: timeout,
		last:    make(map[system.Key]time.Time),
	}
}

// Press records a press or repeat of k. Only the first press of a hold
// produces an intent; jump is edge-only and never held.
func (h *holdTracker) Press(k system.Key, now time.Time) []system.Intent {
	if k == system.KeyJump {
		return []system.Intent{system.KeyDownIntent{Key: k}}
	}
	_, held := h.last[k]
	h.last[k] = now
	if held {
		return nil
	}
	return []system.Intent{system.KeyDownIntent{Key: k}}
}

// Expire releases every key with no repeat within the timeout
func (h *holdTracker) Expire(now time.Time) []system.Intent {
	var out []system.Intent
	for _, k := range []system.Key{system.KeyLeft, system.KeyRight} {
		t, held := h.last[k]
		if held && now.Sub(t) >= h.timeout {
			delete(h.last, k)
			out = append(out, system.KeyUpIntent{Key: k})
		}
	}
	return out
}

// ReleaseAll drops every held key
func (h *holdTracker) ReleaseAll() []system.Intent {
	var out []system.Intent
	for _, k := range []system.Key{system.KeyLeft, system.KeyRight} {
		if _, held := h.last[k]; held {
			delete(h.last, k)
			out = append(out, system.KeyUpIntent{Key: k})
		}
	}
	return out
}
