package storage

import "context"

// ObjectStore is the boundary to the binary image store. Images are keyed
// by object name; the rest of the system only ever sees the returned URL.
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
}
