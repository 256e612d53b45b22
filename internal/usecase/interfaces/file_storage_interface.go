package interfaces

import "context"

// IFileStorage abstracts object storage for uploaded product images
// (S3 in production). Upload returns the public URL of the stored object.

type IFileStorage interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}
