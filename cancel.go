package avif

import "sync/atomic"

// CancelToken is polled between pipeline stages so a long decode can be
// aborted promptly without every collaborator needing context-awareness
// of its own.
type CancelToken interface {
	// Cancelled reports whether cancellation has been requested. It must
	// be safe to call from any goroutine.
	Cancelled() bool
	// Reason returns a short description of why cancellation was
	// requested. Only meaningful once Cancelled reports true.
	Reason() string
}

// NeverCancel returns a CancelToken that never reports cancellation, for
// callers that don't need one.
func NeverCancel() CancelToken { return neverCancel{} }

type neverCancel struct{}

func (neverCancel) Cancelled() bool { return false }
func (neverCancel) Reason() string  { return "" }

// CancelFlag is a simple concurrency-safe CancelToken callers can hand to
// DecodeWith and then trigger from another goroutine.
type CancelFlag struct {
	flag   atomic.Int32
	reason atomic.Value // string
}

// NewCancelFlag returns a CancelFlag in the not-cancelled state.
func NewCancelFlag() *CancelFlag { return &CancelFlag{} }

// Cancel requests cancellation with the given reason. Only the first call
// takes effect; later calls are no-ops.
func (c *CancelFlag) Cancel(reason string) {
	if c.flag.CompareAndSwap(0, 1) {
		c.reason.Store(reason)
	}
}

func (c *CancelFlag) Cancelled() bool { return c.flag.Load() != 0 }

func (c *CancelFlag) Reason() string {
	if v, ok := c.reason.Load().(string); ok {
		return v
	}
	return ""
}

// check returns a typed Cancelled error if tok reports cancellation,
// else nil. Called at each stage boundary in the decode pipeline.
func check(tok CancelToken) error {
	if tok != nil && tok.Cancelled() {
		logWarn("decode cancelled", "reason", tok.Reason())
		return newCancelledError(tok.Reason())
	}
	return nil
}
