package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/carlmjohnson/requests"
	"github.com/kjk/qentry/entry"
	"github.com/kjk/qentry/log"
	"github.com/kjk/qentry/u"
)

// Fetch downloads entries from uri
func Fetch(ctx context.Context, uri string, decode bool) (*entry.List, error) {
	return FetchWithClient(ctx, nil, uri, decode)
}

// pathOf returns path part of uri, used to detect compression
func pathOf(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return parsed.Path
}

// FetchWithClient is like Fetch but uses cl for the request.
// If cl is nil, uses http.DefaultClient
func FetchWithClient(ctx context.Context, cl *http.Client, uri string, decode bool) (*entry.List, error) {
	var buf bytes.Buffer
	rb := requests.URL(uri).ToBytesBuffer(&buf)
	if cl != nil {
		rb = rb.Client(cl)
	}
	err := rb.Fetch(ctx)
	if err != nil {
		log.IfErrf(err, "remote.Fetch('%s') failed with '%s'", uri, err)
		return nil, fmt.Errorf("%w: %w", entry.ErrNotFound, err)
	}
	r, err := u.NewReaderMaybeCompressed(io.NopCloser(&buf), pathOf(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entry.ErrNotFound, err)
	}
	defer u.CloseNoError(r)
	l, err := entry.Read(r, decode)
	if err != nil {
		return nil, err
	}
	log.Event("remote-fetch", "url", uri, "count", l.Len())
	return l, nil
}
