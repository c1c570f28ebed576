package events

import "context"

// NopPublisher is used when no broker is configured; mutations still succeed,
// they just notify nobody.
type NopPublisher struct{}

func (NopPublisher) PublishDataChanged(ctx context.Context) error {
	return nil
}
