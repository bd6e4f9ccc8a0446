package scan

import (
	"context"
	"fmt"
	"io"
	"iter"
	"path"
	"strings"

	"asset-cache/core/storage"

	"github.com/minio/minio-go/v7"
)

// Bucket scans objects in a MinIO/S3 bucket. Directories map to key prefixes:
// Scan(ctx, "assets/sounds", "*.wav") lists "assets/sounds/" non-recursively.
// Prefix, when set, is joined in front of every directory.
type Bucket struct {
	Client storage.Client
	Bucket string
	Prefix string
}

func (b Bucket) Scan(ctx context.Context, dir, pattern string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		if _, err := path.Match(pattern, ""); err != nil {
			yield(Entry{}, fmt.Errorf("invalid pattern %q: %w", pattern, err))
			return
		}

		// Stops the listing goroutine if the consumer breaks out early.
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		prefix := path.Join(b.Prefix, dir)
		if prefix == "" || prefix == "." {
			prefix = ""
		} else {
			prefix += "/"
		}

		objects := b.Client.ListObjects(ctx, b.Bucket, minio.ListObjectsOptions{Prefix: prefix})
		for obj := range objects {
			if obj.Err != nil {
				if !yield(Entry{Path: obj.Key}, obj.Err) {
					return
				}
				continue
			}
			if strings.HasSuffix(obj.Key, "/") {
				continue
			}
			if ok, _ := path.Match(pattern, path.Base(obj.Key)); !ok {
				continue
			}

			name, err := NameOf(obj.Key)
			if !yield(Entry{Name: name, Path: obj.Key}, err) {
				return
			}
		}
	}
}

func (b Bucket) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := b.Client.GetObject(ctx, b.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	return rc, nil
}
