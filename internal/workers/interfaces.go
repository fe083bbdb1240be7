// Package workers runs the application's background workers, currently the
// sweeper that deletes expired pending recovery keys. The Workers aggregate
// starts every registered worker in sequence.
package workers

// Worker is a single background job. Run starts it and returns; workers
// spawn their own goroutines internally.
type Worker interface {
	Run()
}
