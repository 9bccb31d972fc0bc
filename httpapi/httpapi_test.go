package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cropsolve/cropsolve/dataio"
	"github.com/cropsolve/cropsolve/httpapi"
	"github.com/cropsolve/cropsolve/lpmodel"
	"github.com/cropsolve/cropsolve/runner"
	"github.com/cropsolve/cropsolve/sample"
	"github.com/cropsolve/cropsolve/solve"
	"github.com/cropsolve/cropsolve/solver"
)

// gatedBackend blocks inside Solve until release is closed. It keeps a
// task in flight for as long as a test needs.
type gatedBackend struct {
	release chan struct{}
}

func (b *gatedBackend) Name() string { return "gated" }

func (b *gatedBackend) Solve(ctx context.Context, m *lpmodel.Model, _ solver.Options) (*solver.Result, error) {
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

// do runs one request through the router.
func do(h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into), "body: %s", w.Body.String())
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)

	return body
}

// acceptedID extracts the task id from a 202 answer.
func acceptedID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	var accepted struct {
		TaskID string `json:"task_id"`
	}
	decodeJSON(t, w, &accepted)
	require.NotEmpty(t, accepted.TaskID)

	return accepted.TaskID
}

// awaitTask blocks until the identified task finishes.
func awaitTask(t *testing.T, pool *runner.Pool, id string) (*solve.Solution, error) {
	t.Helper()

	tid, err := uuid.Parse(id)
	require.NoError(t, err)
	task, ok := pool.Task(tid)
	require.True(t, ok, "task %s not registered", id)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return task.Wait(ctx)
}

// taskView mirrors the status answer.
type taskView struct {
	TaskID   string   `json:"task_id"`
	Problem  string   `json:"problem"`
	State    string   `json:"state"`
	Progress []string `json:"progress"`
	Status   string   `json:"status"`
	Error    string   `json:"error"`
}

// TestSolve_HappyPath walks the full flow: submit, poll, fetch the
// solution bundle.
func TestSolve_HappyPath(t *testing.T) {
	pool := runner.New(2)
	h := httpapi.New(pool, httpapi.Config{}).Handler()

	w := do(h, http.MethodPost, "/api/v1/solve", mustJSON(t, sample.Basic()))
	id := acceptedID(t, w)

	_, err := awaitTask(t, pool, id)
	require.NoError(t, err)

	w = do(h, http.MethodGet, "/api/v1/tasks/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status taskView
	decodeJSON(t, w, &status)
	assert.Equal(t, id, status.TaskID)
	assert.Equal(t, "basic", status.Problem)
	assert.Equal(t, "done", status.State)
	assert.Equal(t, []string{solve.StageBuild, solve.StageSolve, solve.StageExtract}, status.Progress)
	assert.Equal(t, "optimal", status.Status)
	assert.Empty(t, status.Error)

	w = do(h, http.MethodGet, "/api/v1/tasks/"+id+"/solution", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bundle dataio.SolutionExport
	decodeJSON(t, w, &bundle)
	require.NotNil(t, bundle.Solution)
	assert.Equal(t, solver.StatusOptimal, bundle.Solution.Status)
	assert.NotEmpty(t, bundle.Solution.Allocations)
	assert.Greater(t, bundle.KPIs.TotalProfit, 0.0)
	assert.NotEmpty(t, bundle.Resources)
	assert.NotEmpty(t, bundle.Crops)
	assert.NotEmpty(t, bundle.Parcels)
}

// TestSolve_UnnamedProblemGetsFallback verifies the name default applied
// to anonymous documents.
func TestSolve_UnnamedProblemGetsFallback(t *testing.T) {
	pool := runner.New(1)
	h := httpapi.New(pool, httpapi.Config{}).Handler()

	p := sample.Basic()
	p.Name = ""
	w := do(h, http.MethodPost, "/api/v1/solve", mustJSON(t, p))
	id := acceptedID(t, w)

	_, err := awaitTask(t, pool, id)
	require.NoError(t, err)

	w = do(h, http.MethodGet, "/api/v1/tasks/"+id, nil)
	var status taskView
	decodeJSON(t, w, &status)
	assert.Equal(t, dataio.UnnamedProblem, status.Problem)
}

// TestSolve_Rejections covers the 400 family: undecodable bodies,
// structurally empty problems, validation failures, bad query values.
func TestSolve_Rejections(t *testing.T) {
	pool := runner.New(1)
	h := httpapi.New(pool, httpapi.Config{}).Handler()

	w := do(h, http.MethodPost, "/api/v1/solve", []byte(`{"name": 12}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(h, http.MethodPost, "/api/v1/solve", []byte(`{"name": "empty"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	invalid := sample.Basic()
	invalid.Crops = append(invalid.Crops, invalid.Crops[0])
	w = do(h, http.MethodPost, "/api/v1/solve", mustJSON(t, invalid))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed validation")

	w = do(h, http.MethodPost, "/api/v1/solve?time_limit_seconds=abc", mustJSON(t, sample.Basic()))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(h, http.MethodPost, "/api/v1/solve?backend=cplex", mustJSON(t, sample.Basic()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown backend")
}

// TestSolve_BusyConflict verifies the 409 while the same problem name is
// in flight.
func TestSolve_BusyConflict(t *testing.T) {
	gate := &gatedBackend{release: make(chan struct{})}
	pool := runner.New(1)
	h := httpapi.New(pool, httpapi.Config{}).Handler()

	running, err := pool.Submit(context.Background(), sample.Basic(), solve.Options{Backend: gate})
	require.NoError(t, err)

	w := do(h, http.MethodPost, "/api/v1/solve", mustJSON(t, sample.Basic()))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `basic`)

	close(gate.release)
	_, err = awaitTask(t, pool, running.ID.String())
	require.NoError(t, err)
}

// TestTasks_LifecycleOverHTTP drives a gated task through the solution
// 409, the cancel 204 and the post-failure 404.
func TestTasks_LifecycleOverHTTP(t *testing.T) {
	gate := &gatedBackend{release: make(chan struct{})}
	pool := runner.New(1)
	h := httpapi.New(pool, httpapi.Config{}).Handler()

	task, err := pool.Submit(context.Background(), sample.Basic(), solve.Options{Backend: gate})
	require.NoError(t, err)
	id := task.ID.String()

	w := do(h, http.MethodGet, "/api/v1/tasks/"+id+"/solution", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(h, http.MethodDelete, "/api/v1/tasks/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	_, err = awaitTask(t, pool, id)
	assert.ErrorIs(t, err, solve.ErrCanceled)

	w = do(h, http.MethodGet, "/api/v1/tasks/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status taskView
	decodeJSON(t, w, &status)
	assert.Equal(t, "done", status.State)
	assert.Contains(t, status.Error, "canceled")
	assert.Empty(t, status.Status)

	w = do(h, http.MethodGet, "/api/v1/tasks/"+id+"/solution", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "canceled")
}

// TestTasks_LookupErrors covers malformed and unknown task ids on every
// task route.
func TestTasks_LookupErrors(t *testing.T) {
	pool := runner.New(1)
	h := httpapi.New(pool, httpapi.Config{}).Handler()

	w := do(h, http.MethodGet, "/api/v1/tasks/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	unknown := uuid.New().String()
	for _, probe := range []struct {
		method, target string
	}{
		{http.MethodGet, "/api/v1/tasks/" + unknown},
		{http.MethodDelete, "/api/v1/tasks/" + unknown},
		{http.MethodGet, "/api/v1/tasks/" + unknown + "/solution"},
	} {
		w = do(h, probe.method, probe.target, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", probe.method, probe.target)
	}
}

// TestValidate answers findings without solving.
func TestValidate(t *testing.T) {
	pool := runner.New(1)
	h := httpapi.New(pool, httpapi.Config{}).Handler()

	w := do(h, http.MethodPost, "/api/v1/validate", mustJSON(t, sample.Basic()))
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Valid    bool     `json:"valid"`
		Errors   []string `json:"errors"`
		Warnings []string `json:"warnings"`
	}
	decodeJSON(t, w, &out)
	assert.True(t, out.Valid)
	assert.Empty(t, out.Errors)

	invalid := sample.Basic()
	invalid.Crops = append(invalid.Crops, invalid.Crops[0])
	w = do(h, http.MethodPost, "/api/v1/validate", mustJSON(t, invalid))
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &out)
	assert.False(t, out.Valid)
	assert.NotEmpty(t, out.Errors)

	w = do(h, http.MethodPost, "/api/v1/validate", []byte(`{`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestScenarios enforces the root allowlist and lists complete folders.
func TestScenarios(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, dataio.SaveScenario(filepath.Join(root, "demo"), sample.Intermediate()))

	pool := runner.New(1)
	h := httpapi.New(pool, httpapi.Config{ScenarioRoots: []string{root}}).Handler()

	w := do(h, http.MethodGet, "/api/v1/scenarios", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Root      string   `json:"root"`
		Scenarios []string `json:"scenarios"`
	}
	decodeJSON(t, w, &listing)
	assert.Equal(t, root, listing.Root)
	assert.Equal(t, []string{"demo"}, listing.Scenarios)

	w = do(h, http.MethodGet, "/api/v1/scenarios?root="+root, nil)
	assert.Equal(t, http.StatusOK, w.Code, "allowlisted roots may be named explicitly")

	w = do(h, http.MethodGet, "/api/v1/scenarios?root=/etc", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	bare := httpapi.New(runner.New(1), httpapi.Config{}).Handler()
	w = do(bare, http.MethodGet, "/api/v1/scenarios", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// TestSamples lists the built-ins and solves one end to end.
func TestSamples(t *testing.T) {
	pool := runner.New(1)
	h := httpapi.New(pool, httpapi.Config{}).Handler()

	w := do(h, http.MethodGet, "/api/v1/samples", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Samples []struct {
			Name    string `json:"name"`
			Crops   int    `json:"crops"`
			Parcels int    `json:"parcels"`
		} `json:"samples"`
	}
	decodeJSON(t, w, &listing)
	require.Len(t, listing.Samples, 3)
	assert.Equal(t, "advanced", listing.Samples[0].Name)
	assert.Equal(t, "basic", listing.Samples[1].Name)
	assert.Equal(t, "intermediate", listing.Samples[2].Name)
	assert.Equal(t, 3, listing.Samples[1].Crops)

	w = do(h, http.MethodPost, "/api/v1/samples/basic/solve", nil)
	id := acceptedID(t, w)
	sol, err := awaitTask(t, pool, id)
	require.NoError(t, err)
	assert.Equal(t, solver.StatusOptimal, sol.Status)

	w = do(h, http.MethodPost, "/api/v1/samples/nope/solve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestHealthAndMetrics checks the operational endpoints against a private
// registry.
func TestHealthAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	pool := runner.New(1, runner.WithMetrics(reg))
	h := httpapi.New(pool, httpapi.Config{Metrics: reg}).Handler()

	w := do(h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(h, http.MethodPost, "/api/v1/samples/basic/solve", nil)
	id := acceptedID(t, w)
	_, err := awaitTask(t, pool, id)
	require.NoError(t, err)

	w = do(h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cropsolve_solves_total")
	assert.Contains(t, w.Body.String(), "cropsolve_solve_duration_seconds")
}
