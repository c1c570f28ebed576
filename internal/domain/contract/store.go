package contract

import (
	"context"

	"github.com/familybell/bell-scheduler/internal/domain/entity"
)

// DocumentStore persists the bell document as a single keyed value.
type DocumentStore interface {
	// Load returns the stored document, or (nil, nil) when nothing has been
	// saved yet.
	Load(ctx context.Context) (*entity.Document, error)
	Save(ctx context.Context, doc *entity.Document) error
}
