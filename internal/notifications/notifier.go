package notifications

import "context"

// Message is one outbound e-mail. DedupKey, when non-empty, lets the
// dispatcher suppress a second delivery of the same logical notification.
type Message struct {
	To       string
	Subject  string
	HTML     string
	DedupKey string
}

// Mailer delivers a single message. Implementations must treat delivery as
// best-effort: the caller never retries.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Enqueuer hands a message to the outbound dispatcher. Enqueue never returns
// an error and never fails the enclosing request.
type Enqueuer interface {
	Enqueue(msg Message)
}
