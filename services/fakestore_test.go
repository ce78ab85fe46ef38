package services

import (
	"context"
	"fmt"
	"sync"

	"codewithbuder/store"
)

// fakeStore is an in-memory Store for tests. Snapshot delivery is driven
// manually with emit/emitDoc.
type fakeStore struct {
	mu sync.Mutex

	collSubs map[string][]*fakeCollSub
	docSubs  map[string][]*fakeDocSub

	docs map[string]map[string]map[string]interface{} // collection -> id -> fields

	createErr error
	created   []createdRecord
	nextID    int
}

type createdRecord struct {
	collection string
	record     interface{}
}

type fakeCollSub struct {
	onSnapshot func([]store.Document)
	onError    func(error)
	cancelled  bool
}

type fakeDocSub struct {
	onSnapshot func(*store.Document)
	cancelled  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		collSubs: map[string][]*fakeCollSub{},
		docSubs:  map[string][]*fakeDocSub{},
		docs:     map[string]map[string]map[string]interface{}{},
	}
}

func (f *fakeStore) SubscribeCollection(ctx context.Context, name string, onSnapshot func([]store.Document), onError func(error)) func() {
	f.mu.Lock()
	sub := &fakeCollSub{onSnapshot: onSnapshot, onError: onError}
	f.collSubs[name] = append(f.collSubs[name], sub)
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		sub.cancelled = true
		f.mu.Unlock()
	}
}

func (f *fakeStore) SubscribeDocument(ctx context.Context, collection, id string, onSnapshot func(*store.Document)) func() {
	key := collection + "/" + id
	f.mu.Lock()
	sub := &fakeDocSub{onSnapshot: onSnapshot}
	f.docSubs[key] = append(f.docSubs[key], sub)
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		sub.cancelled = true
		f.mu.Unlock()
	}
}

func (f *fakeStore) GetDocument(ctx context.Context, collection, id string) (*store.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fields, ok := f.docs[collection][id]
	if !ok {
		return nil, nil
	}
	return &store.Document{ID: id, Fields: fields}, nil
}

func (f *fakeStore) CreateDocument(ctx context.Context, collection string, record interface{}) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	f.created = append(f.created, createdRecord{collection: collection, record: record})
	return fmt.Sprintf("doc-%d", f.nextID), nil
}

func (f *fakeStore) SetDocument(ctx context.Context, collection, id string, record interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.docs[collection] == nil {
		f.docs[collection] = map[string]map[string]interface{}{}
	}
	if fields, ok := record.(map[string]interface{}); ok {
		f.docs[collection][id] = fields
	}
	return nil
}

// setDoc seeds a document for GetDocument.
func (f *fakeStore) setDoc(collection, id string, fields map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.docs[collection] == nil {
		f.docs[collection] = map[string]map[string]interface{}{}
	}
	f.docs[collection][id] = fields
}

// emit delivers a collection snapshot to all live subscribers.
func (f *fakeStore) emit(name string, docs []store.Document) {
	f.mu.Lock()
	subs := append([]*fakeCollSub(nil), f.collSubs[name]...)
	f.mu.Unlock()
	for _, s := range subs {
		if !s.cancelled {
			s.onSnapshot(docs)
		}
	}
}

func (f *fakeStore) emitError(name string, err error) {
	f.mu.Lock()
	subs := append([]*fakeCollSub(nil), f.collSubs[name]...)
	f.mu.Unlock()
	for _, s := range subs {
		if !s.cancelled {
			s.onError(err)
		}
	}
}

// emitDoc delivers a document snapshot to live document subscribers.
func (f *fakeStore) emitDoc(collection, id string, doc *store.Document) {
	key := collection + "/" + id
	f.mu.Lock()
	subs := append([]*fakeDocSub(nil), f.docSubs[key]...)
	f.mu.Unlock()
	for _, s := range subs {
		if !s.cancelled {
			s.onSnapshot(doc)
		}
	}
}

// emitDocStale delivers to every subscriber including cancelled ones,
// simulating a straggler callback that fires after teardown.
func (f *fakeStore) emitDocStale(collection, id string, doc *store.Document) {
	key := collection + "/" + id
	f.mu.Lock()
	subs := append([]*fakeDocSub(nil), f.docSubs[key]...)
	f.mu.Unlock()
	for _, s := range subs {
		s.onSnapshot(doc)
	}
}

func (f *fakeStore) liveCollSubs(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.collSubs[name] {
		if !s.cancelled {
			n++
		}
	}
	return n
}

func (f *fakeStore) liveDocSubs(collection, id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.docSubs[collection+"/"+id] {
		if !s.cancelled {
			n++
		}
	}
	return n
}
