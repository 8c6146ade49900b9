package store

import (
	"context"
	"errors"
)

const (
	CollectionPublicans = "publicans"
	CollectionEvents    = "events"
)

var ErrNotFound = errors.New("document not found")

// Document is one query result: the store-issued key plus the raw fields.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Store is the schemaless document store the service persists to.
type Store interface {
	// QueryByField returns every document in collection whose field equals value.
	QueryByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error)

	// List returns every document in collection.
	List(ctx context.Context, collection string) ([]Document, error)

	// Create writes data under a store-issued key and returns it.
	Create(ctx context.Context, collection string, data interface{}) (string, error)

	// Set writes data under the caller-chosen key.
	Set(ctx context.Context, collection, key string, data interface{}) error

	// Read decodes the document at key into out, or returns ErrNotFound.
	Read(ctx context.Context, collection, key string, out interface{}) error

	// Update applies a field patch to an existing document.
	Update(ctx context.Context, collection, key string, patch map[string]interface{}) error

	// CreateAndAppend writes data under a store-issued key and appends that
	// key to the arrayField of refCollection/refKey, committing both writes
	// atomically. Returns the new document's key.
	CreateAndAppend(ctx context.Context, collection string, data interface{}, refCollection, refKey, arrayField string) (string, error)
}
