package services

import (
	"context"
	"sync"

	"codewithbuder/apperror"
	"codewithbuder/store"
)

// Record is one synchronized document flattened to {id, ...fields}, the
// shape the listing views consume. Ordering is whatever the store emitted;
// sorting is a view concern.
type Record map[string]interface{}

// CollectionSync keeps the latest full snapshot of one collection. Every
// emission replaces the held records wholesale, so readers never see a
// partial page. On a subscription error the last-good snapshot is retained
// and only an error flag is raised.
type CollectionSync struct {
	store store.Store
	name  string

	mu     sync.RWMutex
	active bool
	cancel func()
	docs   []Record
	err    error
}

func NewCollectionSync(st store.Store, name string) *CollectionSync {
	return &CollectionSync{store: st, name: name, docs: []Record{}}
}

// Subscribe opens the collection listener. Calling it again while already
// subscribed is a no-op: at most one listener exists per instance.
func (s *CollectionSync) Subscribe(ctx context.Context) {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	cancel := s.store.SubscribeCollection(ctx, s.name, s.onSnapshot, s.onError)

	s.mu.Lock()
	if !s.active {
		// Cancel raced with the listener being opened.
		s.mu.Unlock()
		cancel()
		return
	}
	s.cancel = cancel
	s.mu.Unlock()
}

func (s *CollectionSync) onSnapshot(docs []store.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	records := make([]Record, 0, len(docs))
	for _, d := range docs {
		r := make(Record, len(d.Fields)+1)
		for k, v := range d.Fields {
			r[k] = v
		}
		r["id"] = d.ID
		records = append(records, r)
	}
	s.docs = records
	s.err = nil
}

func (s *CollectionSync) onError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.err = apperror.Subscription(s.name, err)
}

// Snapshot returns a copy of the current records.
func (s *CollectionSync) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.docs))
	copy(out, s.docs)
	return out
}

func (s *CollectionSync) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Err reports the last subscription failure, or nil while the stream is
// healthy.
func (s *CollectionSync) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Cancel stops the listener. Cancelling an already-cancelled sync is a
// no-op, not an error.
func (s *CollectionSync) Cancel() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Hub owns the three collection syncs for the site. It is built once at
// startup and torn down once at shutdown; handlers read snapshots from it
// and never subscribe on their own.
type Hub struct {
	Courses  *CollectionSync
	Blogs    *CollectionSync
	Contacts *CollectionSync
}

func NewHub(st store.Store) *Hub {
	return &Hub{
		Courses:  NewCollectionSync(st, "courses"),
		Blogs:    NewCollectionSync(st, "blogs"),
		Contacts: NewCollectionSync(st, "contacts"),
	}
}

func (h *Hub) Start(ctx context.Context) {
	h.Courses.Subscribe(ctx)
	h.Blogs.Subscribe(ctx)
	h.Contacts.Subscribe(ctx)
}

func (h *Hub) Stop() {
	h.Courses.Cancel()
	h.Blogs.Cancel()
	h.Contacts.Cancel()
}
