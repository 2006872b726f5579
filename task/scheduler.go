package task

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"summarly/logger"
)

// Scheduler hands a unit of work to an uncoordinated async executor.
// There is no delivery or completion guarantee: a scheduled fn may be
// dropped when the queue is full, and nothing reports back whether it ran.
// The caller must not depend on its effects.
type Scheduler interface {
	Schedule(name string, fn func(ctx context.Context))
}

type job struct {
	id   string
	name string
	fn   func(ctx context.Context)
}

// Runner is a channel-backed Scheduler with a fixed worker pool.
type Runner struct {
	queue chan job
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// NewRunner starts workers goroutines draining a queue of queueSize slots.
func NewRunner(queueSize, workers int) *Runner {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	r := &Runner{queue: make(chan job, queueSize)}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.work()
	}
	return r
}

// Schedule enqueues fn without blocking. When the queue is full the job is
// dropped with a warning; callers fire and forget.
func (r *Runner) Schedule(name string, fn func(ctx context.Context)) {
	j := job{id: uuid.New().String(), name: name, fn: fn}
	select {
	case r.queue <- j:
		logger.InfoWithFields("task scheduled", logger.Fields{"task": name, "task_id": j.id})
	default:
		logger.WarnWithFields("task queue full, dropping task", logger.Fields{"task": name, "task_id": j.id})
	}
}

// Close stops accepting work and waits for in-flight jobs to finish.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		close(r.queue)
	})
	r.wg.Wait()
}

func (r *Runner) work() {
	defer r.wg.Done()
	for j := range r.queue {
		r.run(j)
	}
}

func (r *Runner) run(j job) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.ErrorWithFields("task panicked", logger.Fields{"task": j.name, "task_id": j.id, "panic": rec})
		}
	}()
	j.fn(context.Background())
}
