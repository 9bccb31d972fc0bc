// Package httpapi exposes the solve pipeline as a JSON HTTP service.
//
// Solves run asynchronously: POST /api/v1/solve validates the problem,
// hands it to a runner.Pool and answers 202 with a task id. Clients poll
// GET /api/v1/tasks/:id for the stage log, cancel with DELETE, and fetch
// the solution plus its analytics bundle from /tasks/:id/solution once
// the task is done. Validation, scenario listing and the built-in sample
// problems have synchronous endpoints; /healthz and /metrics serve
// operations.
//
// Every error answer is {"error": "..."}. Scenario listing only reads
// roots named in Config.ScenarioRoots.
package httpapi
