package filestore

import (
	"context"
	"io"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_PutAndOpen(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	store := NewBlobStore(bucket, "mem://")
	t.Cleanup(func() { _ = store.Close() })

	uri, err := store.Put(ctx, "reports/abc/Orders_2024-03-10.pdf", []byte("%PDF"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "mem://reports/abc/Orders_2024-03-10.pdf", uri)

	attrs, err := bucket.Attributes(ctx, "reports/abc/Orders_2024-03-10.pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", attrs.ContentType)
	assert.Equal(t, `attachment; filename="Orders_2024-03-10.pdf"`, attrs.ContentDisposition)

	reader, err := store.Open(ctx, "reports/abc/Orders_2024-03-10.pdf")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestBlobStore_OpenMissing(t *testing.T) {
	store := NewBlobStore(memblob.OpenBucket(nil), "mem://")
	t.Cleanup(func() { _ = store.Close() })

	_, err := store.Open(context.Background(), "reports/missing.pdf")
	assert.ErrorIs(t, err, service.ErrFileNotFound)
}

func TestBucketBase(t *testing.T) {
	assert.Equal(t, "file:///var/exports/", bucketBase("file:///var/exports?create_dir=true"))
	assert.Equal(t, "gs://bucket/", bucketBase("gs://bucket"))
	assert.Equal(t, "mem://", bucketBase("mem://"))
}
