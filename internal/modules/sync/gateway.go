package sync

import (
	"context"
	"errors"

	"github.com/hbenomar/macstore-backend/internal/store"
)

// Gateway persists and retrieves the full storefront snapshot. The write is a
// full overwrite with last-writer-wins semantics; a version-stamped backend
// can be substituted here without touching the order engine.
type Gateway interface {
	Fetch(ctx context.Context) (*store.Snapshot, error)
	Push(ctx context.Context, snap *store.Snapshot) error
}

// ErrNoSnapshot is returned by Fetch when the backing store holds no data yet.
var ErrNoSnapshot = errors.New("no snapshot stored")
