package input

// Queue is a Source fed from other goroutines, such as a terminal event loop. Updates pushed to it
// are buffered and applied to a single frame when Poll is called, so Poll never blocks.
type Queue struct {
	updates chan func(*Frame)
}

// NewQueue returns a Queue that buffers up to size updates between two polls.
func NewQueue(size int) *Queue {
	return &Queue{updates: make(chan func(*Frame), size)}
}

// Push queues an update to the next frame. It returns false and drops the update if the queue is full.
func (q *Queue) Push(update func(*Frame)) bool {
	select {
	case q.updates <- update:
		return true
	default:
		return false
	}
}

// Poll applies every queued update to an empty frame and returns it.
func (q *Queue) Poll() Frame {
	f := Empty()
	for {
		select {
		case update := <-q.updates:
			update(&f)
		default:
			return f
		}
	}
}
