// Package filestore keeps exported documents in a gocloud.dev bucket.
package filestore

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// StoreParams holds the dependencies for NewFileStore.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket *blob.Bucket
	scheme string
}

// NewFileStore opens the bucket named by export.bucketUrl.
func NewFileStore(params StoreParams) (service.FileStore, error) {
	bucketURL := params.Config.Export.BucketURL

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	store := NewBlobStore(bucket, bucketURL)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	params.Logger.Info("Export bucket opened", slog.String("bucket", bucketURL))

	return store, nil
}

// NewBlobStore wraps an already opened bucket. bucketURL is used to build object URIs.
func NewBlobStore(bucket *blob.Bucket, bucketURL string) service.FileStore {
	return &blobStore{bucket: bucket, scheme: bucketBase(bucketURL)}
}

func (s *blobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:        contentType,
		ContentDisposition: `attachment; filename="` + lastSegment(key) + `"`,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	return s.scheme + key, nil
}

func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrFileNotFound
		}

		return nil, errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// bucketBase strips query options from a bucket URL and ensures a trailing slash.
func bucketBase(bucketURL string) string {
	base, _, _ := strings.Cut(bucketURL, "?")
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return base
}

func lastSegment(key string) string {
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[i+1:]
	}

	return key
}
