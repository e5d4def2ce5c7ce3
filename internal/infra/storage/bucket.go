// Package storage keeps listing image bytes in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

type bucketStorage struct {
	bucket *blob.Bucket
}

// NewBucketStorage adapts an open bucket to service.ObjectStorage.
func NewBucketStorage(bucket *blob.Bucket) service.ObjectStorage {
	return &bucketStorage{bucket: bucket}
}

func (s *bucketStorage) Put(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "write object %s", key)
	}

	return nil
}

func (s *bucketStorage) Open(ctx context.Context, key string) (io.ReadCloser, *service.ObjectAttributes, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, service.ErrObjectNotFound
		}

		return nil, nil, errors.Wrapf(err, "open object %s", key)
	}

	return reader, &service.ObjectAttributes{
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

func (s *bucketStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete object %s", key)
	}

	return nil
}

// StorageParams holds dependencies for ObjectStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage opens the bucket named by storage.bucketUrl and closes it on shutdown.
func NewObjectStorage(params StorageParams) (service.ObjectStorage, error) {
	bucketURL := "mem://"
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Logger.Info("Opened image bucket", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket), nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewObjectStorage),
)
