// Package store persists knowledge objects and object types.
//
// The import pipeline and CLI talk to the Store interface; the SQLite
// implementation in this package is the default backend.
package store

import (
	"context"
	"errors"

	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/schema"
)

var (
	// ErrObjectNotFound indicates the requested object id is not stored.
	ErrObjectNotFound = errors.New("object not found")
	// ErrTypeNotFound indicates the requested type id is not stored.
	ErrTypeNotFound = errors.New("type not found")
	// ErrObjectExists indicates a create collided with an existing id.
	ErrObjectExists = errors.New("object already exists")
)

// Store is the durable home of objects and types.
type Store interface {
	ListTypes(ctx context.Context) ([]*schema.ObjectType, error)
	GetType(ctx context.Context, id string) (*schema.ObjectType, error)
	SaveType(ctx context.Context, t *schema.ObjectType) error
	DeleteType(ctx context.Context, id string) error

	ListObjects(ctx context.Context) ([]*model.Object, error)
	GetObject(ctx context.Context, id string) (*model.Object, error)
	CreateObject(ctx context.Context, o *model.Object) error
	UpdateObject(ctx context.Context, o *model.Object) error
	DeleteObject(ctx context.Context, id string) error

	// CountByType returns the number of objects per type id.
	CountByType(ctx context.Context) (map[string]int, error)
}
