package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore implements Store on a Cloud Firestore client.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

func (f *Firestore) QueryByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	iter := f.client.Collection(collection).Where(field, "==", value).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("queryByField: error iterating %s where %s == %v: %w", collection, field, value, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

func (f *Firestore) List(ctx context.Context, collection string) ([]Document, error) {
	iter := f.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list: error iterating %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

func (f *Firestore) Create(ctx context.Context, collection string, data interface{}) (string, error) {
	ref, _, err := f.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("create: error adding document to %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (f *Firestore) Set(ctx context.Context, collection, key string, data interface{}) error {
	_, err := f.client.Collection(collection).Doc(key).Set(ctx, data)
	if err != nil {
		return fmt.Errorf("set: error writing %s/%s: %w", collection, key, err)
	}
	return nil
}

func (f *Firestore) Read(ctx context.Context, collection, key string, out interface{}) error {
	snap, err := f.client.Collection(collection).Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read: error getting %s/%s: %w", collection, key, err)
	}

	if err := snap.DataTo(out); err != nil {
		return fmt.Errorf("read: error decoding %s/%s: %w", collection, key, err)
	}
	return nil
}

func (f *Firestore) Update(ctx context.Context, collection, key string, patch map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(patch))
	for path, value := range patch {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := f.client.Collection(collection).Doc(key).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update: error patching %s/%s: %w", collection, key, err)
	}
	return nil
}

func (f *Firestore) CreateAndAppend(ctx context.Context, collection string, data interface{}, refCollection, refKey, arrayField string) (string, error) {
	doc := f.client.Collection(collection).NewDoc()
	ref := f.client.Collection(refCollection).Doc(refKey)

	batch := f.client.Batch()
	batch.Set(doc, data)
	batch.Update(ref, []firestore.Update{
		{Path: arrayField, Value: firestore.ArrayUnion(doc.ID)},
	})

	if _, err := batch.Commit(ctx); err != nil {
		return "", fmt.Errorf("createAndAppend: error committing batch for %s -> %s/%s: %w", collection, refCollection, refKey, err)
	}

	return doc.ID, nil
}
