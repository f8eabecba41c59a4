// Package extsync defines the external storage collaborator: the durable
// store objects are synchronized to. The presence of the ref it returns is
// what marks an object as synced.
package extsync

import (
	"context"

	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/schema"
)

// Syncer uploads objects and media to the external store.
type Syncer interface {
	// UploadObject durably writes the object and returns its opaque
	// external ref.
	UploadObject(ctx context.Context, o *model.Object, t *schema.ObjectType) (string, error)

	// UploadMedia durably writes a media asset and returns its ref.
	UploadMedia(ctx context.Context, name string, data []byte) (string, error)
}
