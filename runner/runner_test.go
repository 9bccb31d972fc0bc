package runner_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cropsolve/cropsolve/lpmodel"
	"github.com/cropsolve/cropsolve/runner"
	"github.com/cropsolve/cropsolve/sample"
	"github.com/cropsolve/cropsolve/solve"
	"github.com/cropsolve/cropsolve/solver"
)

const waitBudget = 5 * time.Second

// gatedBackend blocks inside Solve until release is closed, then reports
// an all-zero optimum. It stands in for a long-running solver. A non-nil
// started channel receives one signal when Solve is entered, letting a
// test wait until the task actually holds a pool slot.
type gatedBackend struct {
	release chan struct{}
	started chan struct{}
}

func (b *gatedBackend) Name() string { return "gated" }

func (b *gatedBackend) Solve(ctx context.Context, m *lpmodel.Model, _ solver.Options) (*solver.Result, error) {
	if b.started != nil {
		select {
		case b.started <- struct{}{}:
		default:
		}
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.release:
	}

	return &solver.Result{
		Status: solver.StatusOptimal,
		Values: make([]float64, len(m.Vars)),
	}, nil
}

// awaitStart blocks until the gated backend reports a running solve.
func awaitStart(t *testing.T, gate *gatedBackend) {
	t.Helper()

	select {
	case <-gate.started:
	case <-time.After(waitBudget):
		t.Fatal("no task reached the backend")
	}
}

// collect drains the event stream until it closes.
func collect(t *testing.T, task *runner.Task) []runner.Event {
	t.Helper()

	var events []runner.Event
	deadline := time.After(waitBudget)
	for {
		select {
		case ev, ok := <-task.Events():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-deadline:
			t.Fatalf("timed out draining events, got %d so far", len(events))
		}
	}
}

// waitFor bounds Task.Wait in tests.
func waitFor(t *testing.T, task *runner.Task) (*solve.Solution, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), waitBudget)
	defer cancel()

	return task.Wait(ctx)
}

// TestSubmit_EventOrdering verifies the full lifecycle on a real solve:
// three progress stages in order, then the solution, then one done event,
// then channel close.
func TestSubmit_EventOrdering(t *testing.T) {
	pool := runner.New(1, runner.WithLogger(zaptest.NewLogger(t)))

	task, err := pool.Submit(context.Background(), sample.Basic(), solve.Options{})
	require.NoError(t, err)

	events := collect(t, task)
	require.Len(t, events, 5)

	assert.Equal(t, runner.EventProgress, events[0].Kind)
	assert.Equal(t, solve.StageBuild, events[0].Message)
	assert.Equal(t, runner.EventProgress, events[1].Kind)
	assert.Equal(t, solve.StageSolve, events[1].Message)
	assert.Equal(t, runner.EventProgress, events[2].Kind)
	assert.Equal(t, solve.StageExtract, events[2].Message)

	assert.Equal(t, runner.EventSolution, events[3].Kind)
	require.NotNil(t, events[3].Solution)
	assert.Equal(t, solver.StatusOptimal, events[3].Solution.Status)

	assert.Equal(t, runner.EventDone, events[4].Kind)
	assert.NoError(t, events[4].Err)

	sol, err := waitFor(t, task)
	require.NoError(t, err)
	assert.Same(t, events[3].Solution, sol, "wait returns the same solution the stream carried")
	assert.True(t, task.Done())
	assert.Equal(t, []string{solve.StageBuild, solve.StageSolve, solve.StageExtract}, task.Progress())
}

// TestSubmit_BusyPerProblemName verifies the single-flight rule: same name
// rejected, different name accepted, same name accepted again after the
// first run finishes.
func TestSubmit_BusyPerProblemName(t *testing.T) {
	gate := &gatedBackend{release: make(chan struct{})}
	pool := runner.New(2)
	opts := solve.Options{Backend: gate}

	first, err := pool.Submit(context.Background(), sample.Basic(), opts)
	require.NoError(t, err)

	_, err = pool.Submit(context.Background(), sample.Basic(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrBusy)
	assert.Contains(t, err.Error(), `"basic"`)

	other, err := pool.Submit(context.Background(), sample.Intermediate(), opts)
	require.NoError(t, err, "a different problem name is not blocked")

	close(gate.release)
	_, err = waitFor(t, first)
	require.NoError(t, err)
	_, err = waitFor(t, other)
	require.NoError(t, err)

	again, err := pool.Submit(context.Background(), sample.Basic(), opts)
	require.NoError(t, err, "finished problems can be resubmitted")
	_, err = waitFor(t, again)
	require.NoError(t, err)
}

// TestTask_CancelDuringSolve verifies cancellation mid-solve surfaces
// solve.ErrCanceled on both the wait path and the event stream, with no
// solution event.
func TestTask_CancelDuringSolve(t *testing.T) {
	gate := &gatedBackend{release: make(chan struct{}), started: make(chan struct{}, 1)}
	pool := runner.New(1)

	task, err := pool.Submit(context.Background(), sample.Basic(), solve.Options{Backend: gate})
	require.NoError(t, err)

	awaitStart(t, gate)
	task.Cancel()

	sol, err := waitFor(t, task)
	require.Error(t, err)
	assert.ErrorIs(t, err, solve.ErrCanceled)
	assert.Nil(t, sol)

	events := collect(t, task)
	require.Len(t, events, 3, "build and solve stages ran, then done")
	assert.Equal(t, runner.EventProgress, events[0].Kind)
	assert.Equal(t, solve.StageBuild, events[0].Message)
	assert.Equal(t, runner.EventProgress, events[1].Kind)
	assert.Equal(t, solve.StageSolve, events[1].Message)
	assert.Equal(t, runner.EventDone, events[2].Kind)
	assert.ErrorIs(t, events[2].Err, solve.ErrCanceled)
}

// TestTask_CanceledWhileQueued verifies a task canceled before it gets a
// pool slot still terminates with solve.ErrCanceled.
func TestTask_CanceledWhileQueued(t *testing.T) {
	gate := &gatedBackend{release: make(chan struct{}), started: make(chan struct{}, 1)}
	pool := runner.New(1)
	opts := solve.Options{Backend: gate}

	running, err := pool.Submit(context.Background(), sample.Basic(), opts)
	require.NoError(t, err)
	awaitStart(t, gate)

	queued, err := pool.Submit(context.Background(), sample.Intermediate(), opts)
	require.NoError(t, err)

	queued.Cancel()
	sol, err := waitFor(t, queued)
	require.Error(t, err)
	assert.ErrorIs(t, err, solve.ErrCanceled)
	assert.Nil(t, sol)

	events := collect(t, queued)
	require.Len(t, events, 1, "queued tasks emit only the done event")
	assert.Equal(t, runner.EventDone, events[0].Kind)

	close(gate.release)
	_, err = waitFor(t, running)
	require.NoError(t, err)
}

// TestSubmit_ContextCancelPropagates verifies the submission context
// doubles as a cancellation handle.
func TestSubmit_ContextCancelPropagates(t *testing.T) {
	gate := &gatedBackend{release: make(chan struct{})}
	pool := runner.New(1)

	ctx, cancel := context.WithCancel(context.Background())
	task, err := pool.Submit(ctx, sample.Basic(), solve.Options{Backend: gate})
	require.NoError(t, err)

	cancel()
	_, err = waitFor(t, task)
	assert.ErrorIs(t, err, solve.ErrCanceled)
}

// TestSubmit_NilProblem verifies the input gate.
func TestSubmit_NilProblem(t *testing.T) {
	pool := runner.New(1)

	_, err := pool.Submit(context.Background(), nil, solve.Options{})
	assert.ErrorIs(t, err, runner.ErrNilProblem)
}

// TestPool_TaskLookup verifies handles stay retrievable after completion.
func TestPool_TaskLookup(t *testing.T) {
	pool := runner.New(1)

	task, err := pool.Submit(context.Background(), sample.Basic(), solve.Options{})
	require.NoError(t, err)
	_, err = waitFor(t, task)
	require.NoError(t, err)

	got, ok := pool.Task(task.ID)
	require.True(t, ok)
	assert.Same(t, task, got)

	_, ok = pool.Task(uuid.New())
	assert.False(t, ok)
}

// TestPool_Metrics verifies the registered instruments and the status
// label of a successful run.
func TestPool_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	pool := runner.New(1, runner.WithMetrics(reg))

	task, err := pool.Submit(context.Background(), sample.Basic(), solve.Options{})
	require.NoError(t, err)
	_, err = waitFor(t, task)
	require.NoError(t, err)

	expected := strings.NewReader(`
# HELP cropsolve_solves_total Finished solve runs by terminal status.
# TYPE cropsolve_solves_total counter
cropsolve_solves_total{status="optimal"} 1
`)
	require.NoError(t, testutil.GatherAndCompare(reg, expected, "cropsolve_solves_total"))

	n, err := testutil.GatherAndCount(reg, "cropsolve_solve_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "duration histogram records the run")
}

// TestPool_Shutdown verifies draining semantics: blocked while a task
// runs, immediate once idle.
func TestPool_Shutdown(t *testing.T) {
	gate := &gatedBackend{release: make(chan struct{})}
	pool := runner.New(1)

	task, err := pool.Submit(context.Background(), sample.Basic(), solve.Options{Backend: gate})
	require.NoError(t, err)

	busyCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, pool.Shutdown(busyCtx), context.DeadlineExceeded)

	close(gate.release)
	_, err = waitFor(t, task)
	require.NoError(t, err)

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), waitBudget)
	defer cancelDrain()
	assert.NoError(t, pool.Shutdown(drainCtx))
}

// TestEventKind_String covers the wire names.
func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "progress", runner.EventProgress.String())
	assert.Equal(t, "solution", runner.EventSolution.String())
	assert.Equal(t, "done", runner.EventDone.String())
	assert.Equal(t, "unknown", runner.EventKind(99).String())
}
