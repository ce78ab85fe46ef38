package store

import "context"

// Document is one remote document: its id plus the raw field map as the
// store reported it.
type Document struct {
	ID     string
	Fields map[string]interface{}
}

// Store is the remote document store consumed by the sync layer. Snapshot
// callbacks fire on every server emission until the returned cancel func is
// called; cancelling twice is a no-op. Callbacks may be invoked from a
// different goroutine than the subscriber's.
type Store interface {
	// SubscribeCollection delivers the full current state of the named
	// collection on every emission. onError is called when the listen
	// stream fails; the subscription is not retried.
	SubscribeCollection(ctx context.Context, name string, onSnapshot func([]Document), onError func(error)) (cancel func())

	// SubscribeDocument delivers the document on every change. A missing
	// document is delivered as nil, not an error.
	SubscribeDocument(ctx context.Context, collection, id string, onSnapshot func(*Document)) (cancel func())

	// GetDocument reads a single document once. Returns nil, nil when the
	// document does not exist.
	GetDocument(ctx context.Context, collection, id string) (*Document, error)

	// CreateDocument adds record to the collection under a store-assigned
	// id, returned once the store acknowledges the create.
	CreateDocument(ctx context.Context, collection string, record interface{}) (string, error)

	// SetDocument writes record under the given id, replacing any existing
	// document.
	SetDocument(ctx context.Context, collection, id string, record interface{}) error
}
