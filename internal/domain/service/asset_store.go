package service

import (
	"context"
	"io"
)

// AssetStore persists opaque binary assets (profile photos) by name.
type AssetStore interface {
	// Put writes data under name, replacing any existing asset with that name.
	Put(ctx context.Context, name, contentType string, data []byte) error

	// Delete removes the named asset. Deleting an absent asset succeeds.
	Delete(ctx context.Context, name string) error

	// Open streams the named asset. The caller closes the reader.
	Open(ctx context.Context, name string) (*Asset, error)
}

// Asset is an opened stored asset.
type Asset struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}
