package contract

import "context"

// EventPublisher notifies external consumers that the bell data changed and
// should be re-fetched.
type EventPublisher interface {
	PublishDataChanged(ctx context.Context) error
}
