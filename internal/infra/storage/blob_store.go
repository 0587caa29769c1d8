// Package storage implements the asset store on top of gocloud.dev/blob buckets.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"userhub/config"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/service"
	"userhub/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobAssetStore implements service.AssetStore for any gocloud blob bucket.
type blobAssetStore struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (service.AssetStore, error) {
	bucketURL := defaultBucketURL
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	} else {
		params.Logger.Warn("No storage bucket configured, photos are kept in memory only")
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Asset store ready", slog.String("bucket", bucketURL))

	return NewBlobAssetStore(bucket), nil
}

// NewBlobAssetStore wraps an already opened bucket.
func NewBlobAssetStore(bucket *blob.Bucket) service.AssetStore {
	return &blobAssetStore{bucket: bucket}
}

func (s *blobAssetStore) Put(ctx context.Context, name, contentType string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := s.bucket.WriteAll(ctx, name, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return domainerrors.NewAssetStoreError(err, "failed to write asset")
	}

	return nil
}

// Delete removes the asset; a missing asset counts as already deleted.
func (s *blobAssetStore) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, name); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return domainerrors.NewAssetStoreError(err, "failed to delete asset")
	}

	return nil
}

func (s *blobAssetStore) Open(ctx context.Context, name string) (*service.Asset, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	reader, err := s.bucket.NewReader(ctx, name, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrAssetNotFound.WrapMessage(name)
		}

		return nil, domainerrors.NewAssetStoreError(err, "failed to open asset")
	}

	return &service.Asset{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

// validateName accepts flat names only; every asset lives at the bucket root.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return domainerrors.ErrValidationFailed.WithDetails("invalid asset name")
	}

	return nil
}
