package remote

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/kjk/qentry/assert"
	"github.com/kjk/qentry/entry"
	"github.com/kjk/qentry/require"
	"github.com/kjk/qentry/u"
)

func TestMarshalList(t *testing.T) {
	l := testList(t)
	d, n, err := marshalList(l, "cfg/params.txt", true, testTime)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	exp := `# automatically generated by qentry at Sun, 18 Oct 2026 12:30:05 GMT.
# cfg/params.txt
user=alice
role=admin
role=root
x=a%20b
`
	assert.Equal(t, exp, string(d))

	d, _, err = marshalList(l, "cfg/params.txt.zst", true, testTime)
	require.NoError(t, err)
	r, err := u.NewReaderMaybeCompressed(io.NopCloser(bytes.NewReader(d)), "cfg/params.txt.zst")
	require.NoError(t, err)
	l2, err := entry.Read(r, true)
	require.NoError(t, err)
	assert.Equal(t, l.Entries(), l2.Entries())

	_, _, err = marshalList(l, "params.bz2", true, testTime)
	assert.Error(t, err)
}

func TestContentTypeForPath(t *testing.T) {
	assert.True(t, strings.HasPrefix(contentTypeForPath("a.txt"), "text/plain"))
	assert.Equal(t, "application/gzip", contentTypeForPath("a.txt.gz"))
	assert.Equal(t, "application/zstd", contentTypeForPath("a.zst"))
	assert.Equal(t, "application/octet-stream", contentTypeForPath("a.br"))
}

func TestURLForPath(t *testing.T) {
	config := &Config{
		Access:   "a",
		Secret:   "s",
		Bucket:   "params",
		Endpoint: "s3.example.com",
	}
	// creating minio client doesn't talk to the server
	mc, err := newMinioClient(config)
	require.NoError(t, err)
	c := &Client{
		Client: mc,
		Bucket: config.Bucket,
		config: config,
	}
	assert.Equal(t, "https://params.s3.example.com/cfg/params.txt", c.URLForPath("/cfg/params.txt"))

	config.Insecure = true
	mc, err = newMinioClient(config)
	require.NoError(t, err)
	c.Client = mc
	assert.Equal(t, "http://params.s3.example.com/", c.URLBase())
}
