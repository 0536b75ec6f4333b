package loop

// Handle identifies a requested frame. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func()) Handle
	CancelFrame(h Handle)
}

type pendingFrame struct {
	handle Handle
	fn     func()
}

// FrameQueue is a cooperative Scheduler. Callbacks requested during a Flush
// run on the following Flush, never the current one.
type FrameQueue struct {
	next    Handle
	pending []pendingFrame
	batch   []pendingFrame // being flushed
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn func()) Handle {
	q.next++
	q.pending = append(q.pending, pendingFrame{handle: q.next, fn: fn})
	return q.next
}

// CancelFrame drops h if it has not run yet, including when h belongs to the
// flush in progress. Cancelling a handle that already ran or was never issued
// does nothing.
func (q *FrameQueue) CancelFrame(h Handle) {
	for i, p := range q.pending {
		if p.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.batch {
		if q.batch[i].handle == h {
			q.batch[i].fn = nil
			return
		}
	}
}

// Len reports how many callbacks are waiting.
func (q *FrameQueue) Len() int { return len(q.pending) }

// Flush runs the callbacks queued before the call. It returns how many ran.
func (q *FrameQueue) Flush() int {
	q.batch = q.pending
	q.pending = nil
	defer func() { q.batch = nil }()

	ran := 0
	for i := range q.batch {
		fn := q.batch[i].fn
		if fn == nil {
			continue
		}
		q.batch[i].fn = nil
		fn()
		ran++
	}
	return ran
}
