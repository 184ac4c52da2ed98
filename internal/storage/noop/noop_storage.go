package noop

import (
	"context"
	"log"

	"slotwise/internal/port"
)

type noopArchive struct{}

// NewArchive creates an ObjectStorage that archives nothing. Used when no
// archive bucket is configured.
func NewArchive() port.ObjectStorage {
	return &noopArchive{}
}

func (a *noopArchive) Upload(_ context.Context, input port.UploadInput) (string, error) {
	log.Printf("noop archive: skipping upload of %s", input.Key)
	return "", nil
}
