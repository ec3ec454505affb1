// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops the web client's background processes in a unified way: the backend
// availability poller and the session janitor.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's processing and returns immediately; the work
// itself happens on a goroutine the worker owns. Stop halts that goroutine
// and blocks until it has fully exited, so callers can rely on nothing
// running after Stop returns.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run()  { /* launch background processing */ }
//	func (w *MyWorker) Stop() { /* halt it and wait */ }
type Worker interface {
	Run()
	Stop()
}
