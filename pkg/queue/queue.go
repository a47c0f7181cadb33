package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the queue has no free slot.
var ErrQueueFull = errors.New("queue is full")

// Task is a unit of work run by the consumer of a queue.
type Task func()

// TaskQueue is a FIFO of tasks with many producers and one consumer.
type TaskQueue interface {
	// Enqueue adds a task to the end of the queue without blocking.
	Enqueue(task Task) error
	// ReadAll removes and returns every task currently in the queue,
	// oldest first.
	ReadAll() []Task
	// Size returns the number of pending tasks.
	Size() int
}
