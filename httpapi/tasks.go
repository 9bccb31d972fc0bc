package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cropsolve/cropsolve/dataio"
	"github.com/cropsolve/cropsolve/runner"
)

// taskStatus is the wire view of one task.
type taskStatus struct {
	TaskID   string   `json:"task_id"`
	Problem  string   `json:"problem"`
	State    string   `json:"state"`
	Progress []string `json:"progress"`
	Status   string   `json:"status,omitempty"`
	Error    string   `json:"error,omitempty"`
}

const (
	stateRunning = "running"
	stateDone    = "done"
)

// handleTaskStatus answers the current state and stage log of a task.
func (s *Server) handleTaskStatus(c *gin.Context) {
	t, ok := s.taskFromPath(c)
	if !ok {
		return
	}

	view := taskStatus{
		TaskID:   t.ID.String(),
		Problem:  t.Problem.Name,
		State:    stateRunning,
		Progress: t.Progress(),
	}
	if t.Done() {
		view.State = stateDone
		sol, err := t.Wait(context.Background())
		if err != nil {
			view.Error = err.Error()
		} else if sol != nil {
			view.Status = sol.Status.String()
		}
	}

	c.JSON(http.StatusOK, view)
}

// handleTaskCancel abandons a task. Idempotent: canceling a finished
// task is a no-op.
func (s *Server) handleTaskCancel(c *gin.Context) {
	t, ok := s.taskFromPath(c)
	if !ok {
		return
	}

	t.Cancel()
	c.Status(http.StatusNoContent)
}

// handleTaskSolution serves the solution with its analytics bundle.
// Answers 409 while the task is still running and 404 when the run
// failed, carrying the failure message.
func (s *Server) handleTaskSolution(c *gin.Context) {
	t, ok := s.taskFromPath(c)
	if !ok {
		return
	}
	if !t.Done() {
		c.JSON(http.StatusConflict, gin.H{"error": "task still running"})

		return
	}

	sol, err := t.Wait(context.Background())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, dataio.NewSolutionExport(t.Problem, sol))
}

// taskFromPath resolves the :id parameter, answering 400 or 404 itself
// when the lookup fails.
func (s *Server) taskFromPath(c *gin.Context) (*runner.Task, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed task id"})

		return nil, false
	}

	t, ok := s.pool.Task(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown task"})

		return nil, false
	}

	return t, true
}
