package services

import (
	"context"
	"sync"

	"codewithbuder/model"
	"codewithbuder/store"
)

// SessionSource is the slice of the auth provider the binder consumes:
// session-change delivery only.
type SessionSource interface {
	// OnSessionChange registers cb and invokes it immediately with the
	// current session (nil when signed out), then again on every sign-in,
	// sign-up and sign-out. Returns an unsubscribe func.
	OnSessionChange(cb func(*model.Session)) func()
}

// SessionBinder pairs the live session with its profile document and
// republishes the merged Identity. Exactly one profile listener is open per
// live session; a session change always tears the previous listener down
// before the next one opens, so a stale profile emission can never
// overwrite the current identity.
type SessionBinder struct {
	store store.Store

	ctx       context.Context
	ctxCancel context.CancelFunc

	mu            sync.Mutex
	gen           int
	identity      *model.Identity
	resolved      bool
	resolvedCh    chan struct{}
	cancelProfile func()
	cancelSession func()
	listeners     map[int]func(*model.Identity)
	nextListener  int
	closed        bool
}

func NewSessionBinder(src SessionSource, st store.Store) *SessionBinder {
	ctx, cancel := context.WithCancel(context.Background())
	b := &SessionBinder{
		store:      st,
		ctx:        ctx,
		ctxCancel:  cancel,
		resolvedCh: make(chan struct{}),
		listeners:  map[int]func(*model.Identity){},
	}
	b.cancelSession = src.OnSessionChange(b.onSessionChange)
	return b
}

func (b *SessionBinder) onSessionChange(s *model.Session) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.gen++
	gen := b.gen
	if b.cancelProfile != nil {
		b.cancelProfile()
		b.cancelProfile = nil
	}

	if s == nil {
		b.identity = nil
		b.markResolvedLocked()
		ls := b.listenerSnapshotLocked()
		b.mu.Unlock()
		for _, cb := range ls {
			cb(nil)
		}
		return
	}

	session := *s
	b.mu.Unlock()

	cancel := b.store.SubscribeDocument(b.ctx, "users", session.SessionID, func(doc *store.Document) {
		b.onProfile(gen, session, doc)
	})

	b.mu.Lock()
	if b.closed || gen != b.gen {
		// The session moved on while the listener was being opened.
		b.mu.Unlock()
		cancel()
		return
	}
	b.cancelProfile = cancel
	b.mu.Unlock()
}

func (b *SessionBinder) onProfile(gen int, session model.Session, doc *store.Document) {
	b.mu.Lock()
	if b.closed || gen != b.gen {
		b.mu.Unlock()
		return
	}

	id := &model.Identity{
		SessionID:    session.SessionID,
		EmailOrPhone: session.EmailOrPhone,
	}
	if doc != nil {
		// Merged view; a later profile edit re-emits here and keeps the
		// display name live without re-authentication.
		id.HasProfile = true
		id.FullName = stringField(doc.Fields, "fullName")
		id.FirstName = stringField(doc.Fields, "firstName")
		id.LastName = stringField(doc.Fields, "lastName")
		id.PhotoURL = stringField(doc.Fields, "photoURL")
	}

	b.identity = id
	b.markResolvedLocked()
	ls := b.listenerSnapshotLocked()
	b.mu.Unlock()
	for _, cb := range ls {
		cb(id)
	}
}

func (b *SessionBinder) markResolvedLocked() {
	if !b.resolved {
		b.resolved = true
		close(b.resolvedCh)
	}
}

func (b *SessionBinder) listenerSnapshotLocked() []func(*model.Identity) {
	ls := make([]func(*model.Identity), 0, len(b.listeners))
	for _, cb := range b.listeners {
		ls = append(ls, cb)
	}
	return ls
}

// Identity returns the current merged identity, or nil when signed out.
func (b *SessionBinder) Identity() *model.Identity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.identity
}

// Resolved reports whether the first session change has been fully
// processed. Consumers must not treat an unresolved binder as signed out.
func (b *SessionBinder) Resolved() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.resolved
}

// WaitResolved blocks until the binder has resolved once or ctx ends.
func (b *SessionBinder) WaitResolved(ctx context.Context) error {
	select {
	case <-b.resolvedCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnIdentityChange registers cb for future identity updates and returns an
// unsubscribe func.
func (b *SessionBinder) OnIdentityChange(cb func(*model.Identity)) func() {
	b.mu.Lock()
	id := b.nextListener
	b.nextListener++
	b.listeners[id] = cb
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// Close cancels the session listener and any open profile listener. Safe to
// call more than once.
func (b *SessionBinder) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	cancelProfile := b.cancelProfile
	b.cancelProfile = nil
	cancelSession := b.cancelSession
	b.cancelSession = nil
	b.mu.Unlock()

	if cancelProfile != nil {
		cancelProfile()
	}
	if cancelSession != nil {
		cancelSession()
	}
	b.ctxCancel()
}

func stringField(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}
