package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/hbenomar/macstore-backend/internal/modules/catalog"
	"github.com/hbenomar/macstore-backend/internal/modules/order"
	"github.com/hbenomar/macstore-backend/internal/modules/site"
	"github.com/hbenomar/macstore-backend/internal/modules/user"
)

// Snapshot is the complete storefront dataset exchanged with the persistence
// layer as a single unit. LastUpdated is regenerated on every write and never
// trusted from a caller.
type Snapshot struct {
	Products    []catalog.Product `json:"products"`
	Users       []user.Account    `json:"users"`
	Orders      []order.Order     `json:"orders"`
	HeroContent site.HeroContent  `json:"heroContent"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Products:    make([]catalog.Product, len(s.Products)),
		Users:       append([]user.Account(nil), s.Users...),
		Orders:      make([]order.Order, len(s.Orders)),
		HeroContent: s.HeroContent,
		LastUpdated: s.LastUpdated,
	}
	for i, p := range s.Products {
		p.Specs = append([]string(nil), p.Specs...)
		c.Products[i] = p
	}
	for i, o := range s.Orders {
		o.Items = append([]order.Item(nil), o.Items...)
		c.Orders[i] = o
	}
	return c
}

// Empty returns a snapshot with all collections present but empty.
func Empty() *Snapshot {
	return &Snapshot{
		Products: []catalog.Product{},
		Users:    []user.Account{},
		Orders:   []order.Order{},
	}
}

// Publisher receives the new authoritative snapshot after every commit.
// Pushes are best-effort; failures are logged and the local state stays
// authoritative for the session.
type Publisher interface {
	Push(ctx context.Context, snap *Snapshot) error
}

// Store owns the authoritative in-memory snapshot. Writes mutate a clone and
// swap it in, so a committed snapshot is never modified afterwards and the
// rest of the system sees either the pre-state or the full post-state.
type Store struct {
	mu          sync.RWMutex
	snap        *Snapshot
	publisher   Publisher
	pushTimeout time.Duration
}

// New creates a store seeded with snap.
func New(snap *Snapshot) *Store {
	if snap == nil {
		snap = Empty()
	}
	return &Store{snap: snap, pushTimeout: 10 * time.Second}
}

// SetPublisher installs the gateway that receives committed snapshots.
func (s *Store) SetPublisher(p Publisher) { s.publisher = p }

func (s *Store) view(fn func(snap *Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.snap)
}

// update clones the current snapshot, applies fn to the working copy, and
// commits it if fn succeeds. On error nothing changes.
func (s *Store) update(fn func(snap *Snapshot) error) error {
	s.mu.Lock()
	working := s.snap.Clone()
	if err := fn(working); err != nil {
		s.mu.Unlock()
		return err
	}
	working.LastUpdated = time.Now().UTC()
	s.snap = working
	s.mu.Unlock()

	s.publish(working)
	return nil
}

// Export returns a copy of the current snapshot stamped with a fresh
// LastUpdated, ready for the wire.
func (s *Store) Export() *Snapshot {
	s.mu.RLock()
	c := s.snap.Clone()
	s.mu.RUnlock()
	c.LastUpdated = time.Now().UTC()
	return c
}

// Replace overwrites the whole snapshot (the POST /sync-data path) and
// persists it.
func (s *Store) Replace(snap *Snapshot) {
	snap.LastUpdated = time.Now().UTC()
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	s.publish(snap)
}

// publish hands the committed snapshot to the gateway without blocking the
// caller. The order (or edit) already succeeded locally; a failed push only
// means changes are local until the next successful sync.
func (s *Store) publish(snap *Snapshot) {
	if s.publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.pushTimeout)
		defer cancel()
		if err := s.publisher.Push(ctx, snap); err != nil {
			log.Printf("store: snapshot push failed, changes are local-only: %v", err)
		}
	}()
}
