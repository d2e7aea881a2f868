package upload

import (
	"context"
	"io"
)

// ObjectStore is the binary blob collaborator: it stores the blob under the
// given key and returns its public URL.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}
