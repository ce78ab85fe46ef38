package store

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore backs the Store interface with a Firestore client. Each
// subscription pumps a Snapshots iterator on its own goroutine and stops
// when the cancel func fires.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) SubscribeCollection(ctx context.Context, name string, onSnapshot func([]Document), onError func(error)) func() {
	ctx, stop := context.WithCancel(ctx)
	it := s.client.Collection(name).Snapshots(ctx)

	go func() {
		for {
			snap, err := it.Next()
			if err != nil {
				if ctx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				onError(err)
				return
			}

			docSnaps, err := snap.Documents.GetAll()
			if err != nil {
				onError(err)
				return
			}

			docs := make([]Document, 0, len(docSnaps))
			for _, d := range docSnaps {
				docs = append(docs, Document{ID: d.Ref.ID, Fields: d.Data()})
			}
			onSnapshot(docs)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stop()
			it.Stop()
		})
	}
}

func (s *FirestoreStore) SubscribeDocument(ctx context.Context, collection, id string, onSnapshot func(*Document)) func() {
	ctx, stop := context.WithCancel(ctx)
	it := s.client.Collection(collection).Doc(id).Snapshots(ctx)

	go func() {
		for {
			snap, err := it.Next()
			if err != nil {
				// Document listens only fail on stream teardown; the
				// missing-document case arrives as a snapshot below.
				return
			}
			if !snap.Exists() {
				onSnapshot(nil)
				continue
			}
			onSnapshot(&Document{ID: snap.Ref.ID, Fields: snap.Data()})
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stop()
			it.Stop()
		})
	}
}

func (s *FirestoreStore) GetDocument(ctx context.Context, collection, id string) (*Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return &Document{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (s *FirestoreStore) CreateDocument(ctx context.Context, collection string, record interface{}) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, record)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *FirestoreStore) SetDocument(ctx context.Context, collection, id string, record interface{}) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, record)
	return err
}
