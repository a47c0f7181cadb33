package game

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cbodonnell/lumen/pkg/game/constants"
	"github.com/cbodonnell/lumen/pkg/log"
	"github.com/cbodonnell/lumen/pkg/queue"
)

// ErrLoopStopped is returned by Execute when the game loop is not running.
var ErrLoopStopped = errors.New("game loop is not running")

// Executor runs tasks on the goroutine that owns the game state.
type Executor interface {
	// Execute schedules a task and returns without waiting for it to run.
	Execute(task queue.Task) error
}

// Loop is the single owner of the game state. Tasks submitted through
// Execute run on the loop's goroutine one at a time, in submission order,
// between the loop's own tick updates.
type Loop struct {
	taskQueue    queue.TaskQueue
	tickInterval time.Duration
	onTick       func(t time.Time)
	running      atomic.Bool
	logger       *log.Logger
}

// NewLoopOptions contains options for creating a new Loop.
type NewLoopOptions struct {
	TaskQueue    queue.TaskQueue
	TickInterval time.Duration
	// OnTick runs on the loop goroutine before the pending tasks of each tick
	OnTick func(t time.Time)
}

func NewLoop(opts NewLoopOptions) *Loop {
	taskQueue := opts.TaskQueue
	if taskQueue == nil {
		taskQueue = queue.NewInMemoryTaskQueue(constants.TaskQueueSize)
	}
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = constants.TickInterval
	}
	return &Loop{
		taskQueue:    taskQueue,
		tickInterval: tickInterval,
		onTick:       opts.OnTick,
		logger:       log.Default().Named("game"),
	}
}

// Start runs the game loop until the context is cancelled.
func (l *Loop) Start(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("game loop already running")
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.tickInterval)
	defer ticker.Stop()

	l.logger.Info("Game loop started with tick interval %s", l.tickInterval)
	for {
		select {
		case <-ctx.Done():
			if pending := l.taskQueue.Size(); pending > 0 {
				l.logger.Debug("Game loop stopped with %d pending tasks", pending)
			}
			return nil
		case t := <-ticker.C:
			l.tick(t)
		}
	}
}

// Running returns true while Start is executing.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Execute schedules a task to run on the next tick.
func (l *Loop) Execute(task queue.Task) error {
	if !l.running.Load() {
		return ErrLoopStopped
	}
	if err := l.taskQueue.Enqueue(task); err != nil {
		return fmt.Errorf("failed to schedule task: %w", err)
	}
	return nil
}

// tick runs one iteration of the game loop.
func (l *Loop) tick(t time.Time) {
	if l.onTick != nil {
		l.runTask(func() { l.onTick(t) })
	}
	for _, task := range l.taskQueue.ReadAll() {
		l.runTask(task)
	}
}

// runTask runs a task, logging instead of crashing the loop if it panics.
func (l *Loop) runTask(task queue.Task) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Recovered from panic in game loop task: %v", r)
		}
	}()
	task()
}
