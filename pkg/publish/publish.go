// Package publish uploads a rendered site to a Google Cloud Storage bucket.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ProgressCallback is a function that receives progress updates
type ProgressCallback func(step string, progress int)

// Object is one stored file of the published site
type Object struct {
	Name        string
	Size        int64
	ContentType string
	Updated     time.Time
}

// Publisher writes files to one bucket
type Publisher struct {
	client *storage.Client
	bucket *storage.BucketHandle
	logger zerolog.Logger
}

// New connects to the bucket. Options are passed to the storage client.
func New(ctx context.Context, bucketName string, logger zerolog.Logger, opts ...option.ClientOption) (*Publisher, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &Publisher{
		client: client,
		bucket: client.Bucket(bucketName),
		logger: logger,
	}, nil
}

// Close releases the storage client
func (p *Publisher) Close() error {
	return p.client.Close()
}

// UploadDir uploads every regular file below dir, keyed by its slash separated
// path relative to dir. It returns the number of uploaded files.
func (p *Publisher) UploadDir(ctx context.Context, dir string, progressCb ProgressCallback) (int, error) {
	sendProgress := func(step string, progress int) {
		if progressCb != nil {
			progressCb(step, progress)
		}
	}

	sendProgress("Scanning files", 0)
	files, err := ListFiles(dir)
	if err != nil {
		return 0, err
	}

	for i, rel := range files {
		sendProgress("Uploading "+rel, i*100/len(files))
		if err := p.uploadFile(ctx, filepath.Join(dir, filepath.FromSlash(rel)), rel); err != nil {
			return i, err
		}
		p.logger.Debug().Str("object", rel).Msg("uploaded")
	}

	sendProgress("Complete", 100)
	return len(files), nil
}

// List returns the objects stored in the bucket
func (p *Publisher) List(ctx context.Context) ([]Object, error) {
	var objects []Object

	it := p.bucket.Objects(ctx, nil)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return objects, fmt.Errorf("error iterating objects: %w", err)
		}
		objects = append(objects, Object{
			Name:        attrs.Name,
			Size:        attrs.Size,
			ContentType: attrs.ContentType,
			Updated:     attrs.Updated,
		})
	}

	return objects, nil
}

func (p *Publisher) uploadFile(ctx context.Context, src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	writer := p.bucket.Object(dst).NewWriter(ctx)
	writer.ContentType = ContentType(dst)
	if strings.HasSuffix(dst, ".html") || strings.HasSuffix(dst, ".js") {
		writer.CacheControl = "no-cache"
	}

	if _, err := io.Copy(writer, f); err != nil {
		_ = writer.Close()
		return fmt.Errorf("Writer.Write %s: %w", dst, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("Writer.Close %s: %w", dst, err)
	}

	return nil
}

// ListFiles returns the slash separated paths of all regular files below dir, in lexical order
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return files, nil
}

// ContentType returns the MIME type for an object name
func ContentType(name string) string {
	switch path.Ext(name) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	}
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
