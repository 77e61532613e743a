// Package progress models the cancellation/progress-reporting context that
// threads through every recursive transform call.
package progress

import "sync/atomic"

// Sink receives progress updates. Implementations must be safe for
// concurrent use since multiple per-layer tasks may report concurrently.
type Sink interface {
	// UpdateProgress reports that done of total elements of elementType have
	// completed so far, in the reporting operation's own counts.
	UpdateProgress(elementType string, done, total uint64)
}

// Context is threaded through every recursive call. A nil *Context is a
// usable no-op context; New returns a root covering the whole [0,1) range.
type Context struct {
	sink      Sink
	from, to  float64
	cancelled *atomic.Bool
}

// New returns a root context reporting to sink (which may be nil) over the
// whole [0,1) range with a fresh cancellation flag.
func New(sink Sink) *Context {
	return &Context{sink: sink, from: 0, to: 1, cancelled: new(atomic.Bool)}
}

// SubContext derives a context covering the sub-range
// [from + frac(fromFrac), from + frac(toFrac)) of the receiver's own range,
// sharing the same cancellation flag and sink. The range is recorded on the
// context; UpdateProgress does not apply it.
func (c *Context) SubContext(fromFrac, toFrac float64) *Context {
	if c == nil {
		return nil
	}
	span := c.to - c.from
	return &Context{
		sink:      c.sink,
		from:      c.from + span*fromFrac,
		to:        c.from + span*toFrac,
		cancelled: c.cancelled,
	}
}

// UpdateProgress passes done/total to the sink unchanged; it does not remap
// them by this context's range. A nil context or nil sink is a no-op.
func (c *Context) UpdateProgress(elementType string, done, total uint64) {
	if c == nil || c.sink == nil {
		return
	}
	c.sink.UpdateProgress(elementType, done, total)
}

// Cancel requests cancellation. All contexts derived from the same root
// observe it.
func (c *Context) Cancel() {
	if c == nil {
		return
	}
	c.cancelled.Store(true)
}

// CheckInterruption reports whether cancellation has been requested anywhere
// in this context's lineage.
func (c *Context) CheckInterruption() bool {
	if c == nil || c.cancelled == nil {
		return false
	}
	return c.cancelled.Load()
}

// Progress-mask sampling cadence: long inner loops check the cancel flag
// every mask-aligned step rather than every iteration.
const (
	MaskFine   = 0xFF
	MaskMedium = 0xFFF
	MaskCoarse = 0xFFFF
)

// ShouldCheck reports whether iteration i (0-based) lands on a cancellation
// check boundary for the given mask.
func ShouldCheck(i uint64, mask uint64) bool {
	return i&mask == 0
}
