// Package workers runs background jobs next to the cipher server and the
// terminal client.
//
// A Worker is idle until Start and is stopped with Stop; Workers starts and
// stops a group of them together.
package workers

import "context"

// Worker is a background job bound to a context.
//
// Start launches the job and returns immediately. Stop cancels it and blocks
// until it has exited. Stop on a worker that was never started is a no-op.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
