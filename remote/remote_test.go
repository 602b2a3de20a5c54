package remote

import (
	"bytes"
	"io"

	"github.com/kjk/qentry/log"
)

// logOutput redirects log.Logf output and returns the previous writer
func logOutput(w io.Writer) io.Writer {
	prev := log.Output
	log.Output = w
	return prev
}

func bytesReader(d []byte) io.Reader {
	return bytes.NewReader(d)
}
