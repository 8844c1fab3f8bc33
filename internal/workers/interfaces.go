// Package workers runs the server's periodic background jobs.
package workers

import "context"

// Worker is a background job. Start returns immediately; the job runs until
// ctx ends or Stop is called. Stop blocks until the job has exited and is
// safe to call on a job that never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
