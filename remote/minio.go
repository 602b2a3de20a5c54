package remote

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kjk/qentry/entry"
	"github.com/kjk/qentry/log"
	"github.com/kjk/qentry/u"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client saves and loads entry lists in S3-compatible storage
type Client struct {
	Client *minio.Client
	Bucket string
	config *Config
}

func newMinioClient(config *Config) (*minio.Client, error) {
	return minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Access, config.Secret, ""),
		Region: config.Region,
		Secure: !config.Insecure,
	})
}

// New creates a Client. Fails if the bucket doesn't exist
func New(ctx context.Context, config *Config) (*Client, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	mc, err := newMinioClient(config)
	if err != nil {
		return nil, err
	}
	found, err := mc.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("bucket '%s' doesn't exist", config.Bucket)
	}
	return &Client{
		Client: mc,
		Bucket: config.Bucket,
		config: config,
	}, nil
}

func (c *Client) URLBase() string {
	url := c.Client.EndpointURL()
	return fmt.Sprintf("%s://%s.%s/", url.Scheme, c.Bucket, url.Host)
}

func (c *Client) URLForPath(remotePath string) string {
	return c.URLBase() + strings.TrimPrefix(remotePath, "/")
}

func (c *Client) Exists(ctx context.Context, remotePath string) bool {
	_, err := c.Client.StatObject(ctx, c.Bucket, remotePath, minio.StatObjectOptions{})
	return err == nil
}

func (c *Client) Remove(ctx context.Context, remotePath string) error {
	opts := minio.RemoveObjectOptions{}
	return c.Client.RemoveObject(ctx, c.Bucket, remotePath, opts)
}

// marshalList serializes l the way entry.Save would, compressing
// based on the extension of remotePath
func marshalList(l *entry.List, remotePath string, encode bool, now time.Time) ([]byte, int, error) {
	var buf bytes.Buffer
	wc, err := u.NewWriterMaybeCompressed(&buf, remotePath)
	if err != nil {
		return nil, 0, err
	}
	n, err := l.WriteText(wc, remotePath, encode, now)
	if err != nil {
		_ = wc.Close()
		return nil, 0, err
	}
	if err = wc.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), n, nil
}

func contentTypeForPath(remotePath string) string {
	switch u.CompressionFromPath(remotePath) {
	case u.CompressionGzip:
		return "application/gzip"
	case u.CompressionZstd:
		return "application/zstd"
	case u.CompressionBrotli, u.CompressionBzip2:
		return "application/octet-stream"
	}
	return "text/plain; charset=utf-8"
}

// SaveList uploads l as remotePath. Returns number of saved entries
func (c *Client) SaveList(ctx context.Context, remotePath string, l *entry.List, encode bool) (int, error) {
	d, n, err := marshalList(l, remotePath, encode, time.Now())
	if err != nil {
		return 0, err
	}
	opts := minio.PutObjectOptions{
		ContentType: contentTypeForPath(remotePath),
	}
	_, err = c.Client.PutObject(ctx, c.Bucket, remotePath, bytes.NewReader(d), int64(len(d)), opts)
	if err != nil {
		log.IfErrf(err, "remote.SaveList: uploading '%s' failed with '%s'", remotePath, err)
		return 0, err
	}
	log.Event("remote-save", "bucket", c.Bucket, "path", remotePath, "count", n, "size", len(d))
	return n, nil
}

// LoadList downloads remotePath saved with SaveList
func (c *Client) LoadList(ctx context.Context, remotePath string, decode bool) (*entry.List, error) {
	obj, err := c.Client.GetObject(ctx, c.Bucket, remotePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entry.ErrNotFound, err)
	}
	r, err := u.NewReaderMaybeCompressed(obj, remotePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entry.ErrNotFound, err)
	}
	defer u.CloseNoError(r)
	l, err := entry.Read(r, decode)
	if err != nil {
		return nil, err
	}
	log.Event("remote-load", "bucket", c.Bucket, "path", remotePath, "count", l.Len())
	return l, nil
}
