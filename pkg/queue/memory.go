// queue package

package queue

// DefaultQueueBufferSize is the buffer size used when none is given
const DefaultQueueBufferSize = 1024

// InMemoryTaskQueue implements a channel backed task queue.
type InMemoryTaskQueue struct {
	ch chan Task
}

// NewInMemoryTaskQueue creates a new queue holding at most size tasks.
func NewInMemoryTaskQueue(size int) *InMemoryTaskQueue {
	if size <= 0 {
		size = DefaultQueueBufferSize
	}
	return &InMemoryTaskQueue{
		ch: make(chan Task, size),
	}
}

// Enqueue adds a task to the end of the queue.
func (q *InMemoryTaskQueue) Enqueue(task Task) error {
	select {
	case q.ch <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// ReadAll reads all pending tasks in the queue
func (q *InMemoryTaskQueue) ReadAll() []Task {
	var tasks []Task
	for {
		select {
		case task := <-q.ch:
			tasks = append(tasks, task)
		default:
			return tasks
		}
	}
}

// Size returns the current size of the queue.
func (q *InMemoryTaskQueue) Size() int {
	return len(q.ch)
}
