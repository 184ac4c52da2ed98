package port

import (
	"context"
	"io"
)

// UploadInput describes one object to archive.
type UploadInput struct {
	Key         string
	ContentType string
	Body        io.Reader
}

// ObjectStorage archives uploaded workbooks so an import run stays
// auditable back to its exact input file.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (key string, err error)
}
