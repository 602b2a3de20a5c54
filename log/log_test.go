package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kjk/qentry/assert"
	"github.com/kjk/qentry/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := Output
	Output = &buf
	t.Cleanup(func() {
		Output = prev
	})
	return &buf
}

func TestWriteDaily(t *testing.T) {
	dir := t.TempDir()
	w := NewWriteDaily(dir)
	err := w.WriteString("hello\n")
	assert.NoError(t, err)
	err = w.WriteString("world\n")
	assert.NoError(t, err)
	assert.NoError(t, w.Sync())
	assert.NoError(t, w.Close())
	// closing twice is fine
	assert.NoError(t, w.Close())

	d, err := os.ReadFile(w.PathForTime(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(d))

	// nil receiver is a no-op
	var wNil *WriteDaily
	assert.NoError(t, wNil.WriteString("foo"))
	assert.NoError(t, wNil.Close())
}

func TestLogfAndVerbosef(t *testing.T) {
	buf := captureOutput(t)
	Verbose = false
	Logf("count: %d\n", 3)
	Verbosef("should not show\n")
	assert.Equal(t, "count: 3\n", buf.String())

	Verbose = true
	defer func() { Verbose = false }()
	Verbosef("now shows\n")
	assert.True(t, strings.HasSuffix(buf.String(), "now shows\n"))
}

func TestInitAndErrors(t *testing.T) {
	buf := captureOutput(t)
	dir := t.TempDir()
	Init(&Config{Dir: dir})
	defer Close()

	assert.False(t, IfErrf(nil))
	assert.True(t, IfErrf(errors.New("boom"), "saving '%s' failed", "foo.txt"))
	assert.Contains(t, buf.String(), "saving 'foo.txt' failed")
	// callstack points to this file
	assert.Contains(t, buf.String(), "log_test.go")

	Event("entry-save", "path", "foo.txt", "count", 3)
	Close()

	d, err := os.ReadFile(filepath.Join(dir, "errors", time.Now().UTC().Format("2006-01-02")+".txt"))
	require.NoError(t, err)
	assert.Contains(t, string(d), "saving 'foo.txt' failed")

	d, err = os.ReadFile(filepath.Join(dir, "events", time.Now().UTC().Format("2006-01-02")+".txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(d), "--- entry-save "))
	assert.Contains(t, string(d), "foo.txt")
}

func TestMarshalEvent(t *testing.T) {
	tm := time.UnixMilli(5000)
	d, err := MarshalEvent("ping", tm)
	assert.NoError(t, err)
	assert.Equal(t, "--- ping 5000\n", string(d))

	d, err = MarshalEvent("save", tm, "count", 2)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(d), "--- save 5000\n"))
	assert.Contains(t, string(d), "count")
	assert.True(t, strings.HasSuffix(string(d), "\n"))

	_, err = MarshalEvent("bad", tm, "count")
	assert.Error(t, err)
}
