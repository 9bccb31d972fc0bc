package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/cropsolve/cropsolve/agro"
	"github.com/cropsolve/cropsolve/solve"
)

var (
	// ErrBusy is returned by Submit while a task for the same problem name
	// is still in flight.
	ErrBusy = errors.New("runner: problem already being solved")

	// ErrNilProblem is returned by Submit for a nil problem.
	ErrNilProblem = errors.New("runner: nil problem")
)

// Option configures a Pool.
type Option func(*Pool)

// WithLogger makes the pool narrate task lifecycles.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pool) { p.logger = l }
}

// WithMetrics registers the solve duration histogram and the per-status
// counter with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(p *Pool) { p.met = newMetrics(reg) }
}

// Pool runs solves asynchronously, at most size at a time.
type Pool struct {
	sem    *semaphore.Weighted
	logger *zap.Logger
	met    *metrics
	wg     sync.WaitGroup

	mu     sync.Mutex
	active map[string]uuid.UUID
	tasks  map[uuid.UUID]*Task
}

// New returns a pool bounded to size concurrent solves. Sizes below one
// are raised to one.
func New(size int, opts ...Option) *Pool {
	if size < 1 {
		size = 1
	}

	p := &Pool{
		sem:    semaphore.NewWeighted(int64(size)),
		logger: zap.NewNop(),
		active: make(map[string]uuid.UUID),
		tasks:  make(map[uuid.UUID]*Task),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Submit schedules one solve run and returns its task handle. The run
// inherits ctx: canceling it abandons the task. While a task for the same
// problem name is in flight, Submit returns ErrBusy.
func (p *Pool) Submit(ctx context.Context, prob *agro.Problem, opts solve.Options) (*Task, error) {
	if prob == nil {
		return nil, ErrNilProblem
	}

	tctx, cancel := context.WithCancel(ctx)
	t := newTask(prob, cancel)

	p.mu.Lock()
	if running, busy := p.active[prob.Name]; busy {
		p.mu.Unlock()
		cancel()

		return nil, fmt.Errorf("%w: %q (task %s)", ErrBusy, prob.Name, running)
	}
	p.active[prob.Name] = t.ID
	p.tasks[t.ID] = t
	p.mu.Unlock()

	p.logger.Info("task submitted",
		zap.String("task", t.ID.String()),
		zap.String("problem", prob.Name))

	p.wg.Add(1)
	go p.run(tctx, t, opts)

	return t, nil
}

// Task looks up a handle by ID. Finished tasks stay retrievable.
func (p *Pool) Task(id uuid.UUID) (*Task, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, ok := p.tasks[id]

	return t, ok
}

// Shutdown waits until every submitted task has finished or ctx ends.
// It does not cancel tasks; pair it with context cancellation for a
// forced stop.
func (p *Pool) Shutdown(ctx context.Context) error {
	idle := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(idle)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-idle:
		return nil
	}
}

// run executes one task: queue on the semaphore, solve, publish the
// outcome.
func (p *Pool) run(ctx context.Context, t *Task, opts solve.Options) {
	defer p.wg.Done()
	defer t.cancel()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.finish(t, nil, fmt.Errorf("%w: abandoned while queued", solve.ErrCanceled), -1)

		return
	}
	defer p.sem.Release(1)

	userProgress := opts.OnProgress
	opts.OnProgress = func(stage string) {
		t.recordProgress(stage)
		p.logger.Debug("task progress",
			zap.String("task", t.ID.String()),
			zap.String("stage", stage))
		if userProgress != nil {
			userProgress(stage)
		}
	}

	start := time.Now()
	sol, err := solve.Run(ctx, t.Problem, opts)
	p.finish(t, sol, err, time.Since(start).Seconds())
}

// finish releases the problem slot, records metrics and closes out the
// task.
func (p *Pool) finish(t *Task, sol *solve.Solution, err error, seconds float64) {
	p.mu.Lock()
	delete(p.active, t.Problem.Name)
	p.mu.Unlock()

	status := outcomeLabel(sol, err)
	p.met.observe(seconds, status)

	if err != nil {
		p.logger.Warn("task failed",
			zap.String("task", t.ID.String()),
			zap.String("problem", t.Problem.Name),
			zap.String("status", status),
			zap.Error(err))
	} else {
		p.logger.Info("task finished",
			zap.String("task", t.ID.String()),
			zap.String("problem", t.Problem.Name),
			zap.String("status", status),
			zap.Float64("seconds", seconds))
	}

	t.finish(sol, err)
}
