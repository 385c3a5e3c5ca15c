package ports

import (
	"context"
	"time"
)

// Submission is one remote call made on behalf of a caller.
type Submission struct {
	ID        string
	Operation Operation
	Document  any
	Response  *Response
	Err       error
	Duration  time.Duration
	CreatedAt time.Time
}

// SubmissionJournal records submissions for audit. Journal failures never fail
// the submission itself.
type SubmissionJournal interface {
	Record(ctx context.Context, s Submission) error
}
