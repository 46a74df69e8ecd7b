package media

import (
	"context"
	"io"
)

// Storage is the remote media provider. Keys are full storage keys
// (folder + identifier).
type Storage interface {
	Upload(ctx context.Context, key string, file io.Reader) error
	// Version returns the current version of an existing asset.
	Version(ctx context.Context, key string) (int, error)
	// URL builds a delivery URL locally. version <= 0 omits the version.
	URL(key string, format Format, version int) (string, error)
}
