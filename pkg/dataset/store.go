package dataset

import (
	"context"
	"encoding/hex"
	stderrors "errors"
	"hash/fnv"

	"github.com/elaraai/east-ui-sub007/internal/errors"
)

// Key identifies one dataset.
type Key struct {
	Workspace string
	Path      string
}

// Store is a remote, path-addressed backend for workspace datasets.
// Implementations must be safe for concurrent use.
type Store interface {
	// Read returns the dataset content.
	// Returns an E301 error if no dataset exists at the path.
	Read(ctx context.Context, workspace, path string) ([]byte, error)

	// Write stores the dataset content, overwriting any previous value.
	Write(ctx context.Context, workspace, path string, data []byte) error

	// Delete removes a dataset. Deleting a missing dataset is not an error.
	Delete(ctx context.Context, workspace, path string) error

	// Hashes returns the content hash of every dataset in the workspace,
	// keyed by path. Pollers compare these against known hashes to avoid
	// re-fetching unchanged content.
	Hashes(ctx context.Context, workspace string) (map[string]string, error)

	// Close releases any resources held by the store.
	Close() error
}

// ContentHash returns the hash used for change detection on locally
// produced content. Store backends with a native content hash (S3 ETags)
// use that instead; the two only need to be consistent per backend.
func ContentHash(data []byte) string {
	h := fnv.New64a()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// IsNotFound reports whether err marks a missing dataset.
func IsNotFound(err error) bool {
	var ee *errors.EastError
	if !stderrors.As(err, &ee) {
		return false
	}
	return ee.Code == "E301"
}
