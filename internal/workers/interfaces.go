// Package workers provides the background workers of the agent and a
// fixed-size pool for document processing jobs.
package workers

// Worker is one background worker owned by the agent lifecycle. Run
// starts the worker and returns immediately; implementations spawn
// their own goroutines.
type Worker interface {
	Run()
}
