package console

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Kind classifies a status message.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// DefaultStatusTTL is how long a status message stays visible.
const DefaultStatusTTL = 3 * time.Second

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Status is one notification. Seq increases with every Notify call.
type Status struct {
	Seq       uint64
	Message   string
	Kind      Kind
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Notifier keeps the single visible status message. Each Notify replaces the
// previous message and starts that message's own expiry; an earlier message's
// expiry never hides a later one.
type Notifier struct {
	mu      sync.Mutex
	clock   Clock
	ttl     time.Duration
	log     *slog.Logger
	seq     uint64
	current Status
}

// NewNotifier returns a Notifier. A non-positive ttl means DefaultStatusTTL;
// nil clock and logger fall back to the wall clock and slog.Default().
func NewNotifier(ttl time.Duration, clock Clock, logger *slog.Logger) *Notifier {
	if ttl <= 0 {
		ttl = DefaultStatusTTL
	}
	if clock == nil {
		clock = realClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{clock: clock, ttl: ttl, log: logger}
}

// Notify shows message immediately, replacing whatever was shown.
func (n *Notifier) Notify(message string, kind Kind) Status {
	n.mu.Lock()
	now := n.clock.Now()
	n.seq++
	n.current = Status{
		Seq:       n.seq,
		Message:   message,
		Kind:      kind,
		ShownAt:   now,
		ExpiresAt: now.Add(n.ttl),
	}
	st := n.current
	n.mu.Unlock()

	n.log.Log(context.Background(), kind.level(), "status", "kind", string(kind), "message", message)
	return st
}

// Current returns the visible message, if any has not yet expired.
func (n *Notifier) Current() (Status, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current.Seq == 0 || !n.clock.Now().Before(n.current.ExpiresAt) {
		return Status{}, false
	}
	return n.current, true
}

// Remaining is how long the visible message has left; zero when none is shown.
func (n *Notifier) Remaining() time.Duration {
	st, ok := n.Current()
	if !ok {
		return 0
	}
	return st.ExpiresAt.Sub(n.clock.Now())
}

func (n *Notifier) TTL() time.Duration { return n.ttl }

func (k Kind) level() slog.Level {
	switch k {
	case KindError:
		return slog.LevelWarn
	case KindInfo:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
