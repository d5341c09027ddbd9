package admin

import (
	"sync"
	"time"
)

// Notice holds a short-lived, user-visible status message that clears itself
// after a fixed delay. Purely presentational; it never affects store state.
type Notice struct {
	mu    sync.Mutex
	text  string
	ttl   time.Duration
	timer *time.Timer
}

func NewNotice(ttl time.Duration) *Notice {
	return &Notice{ttl: ttl}
}

// Set replaces the current message and restarts the auto-clear timer.
func (n *Notice) Set(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.text = text
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, n.clear)
}

// Text returns the current message, or "" after it has expired.
func (n *Notice) Text() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.text
}

func (n *Notice) clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.text = ""
}
