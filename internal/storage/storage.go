package storage

import (
	"context"
	"mime/multipart"
)

// Uploader stores an image binary with an external provider and returns
// the URL to persist. The binary itself never touches the database.
type Uploader interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}
