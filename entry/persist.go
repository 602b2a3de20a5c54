package entry

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/kjk/qentry/kvfile"
	"github.com/kjk/qentry/log"
	"github.com/kjk/qentry/u"
)

// name of the program in the header of saved files
const producerName = "qentry"

// WriteText writes entries in the format:
//
//	# automatically generated by qentry at ${time in GMT}.
//	# ${dest}
//	name=value
//	...
//
// If encode is true, values are url-encoded. Names are never encoded.
// Names or values with newlines will not read back correctly. Neither will
// names that start with '#' (the line reads back as a comment), names that
// contain '=' (the line is split at the first '=') or names with leading or
// trailing whitespace (trimmed on load). Without encode the same trimming
// applies to values.
// Returns number of written entries
func (l *List) WriteText(w io.Writer, dest string, encode bool, now time.Time) (int, error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# automatically generated by %s at %s.\n", producerName, u.FormatGMT(now))
	fmt.Fprintf(bw, "# %s\n", dest)
	n := 0
	for name, value := range l.All() {
		if encode {
			value = u.URLEncode(value)
		}
		bw.WriteString(name)
		bw.WriteByte('=')
		bw.WriteString(value)
		bw.WriteByte('\n')
		n++
	}
	// bufio.Writer remembers the first error so it's enough to check Flush()
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return n, nil
}

// Save saves entries to a file at path. See WriteText for the format.
// The file is compressed if path ends with .gz, .zst or .br.
// The file is written atomically: if saving fails, the old
// content of path (if any) is preserved
func (l *List) Save(path string, encode bool) (int, error) {
	var n int
	err := u.WriteFileAtomic(path, func(w io.Writer) error {
		wc, err := u.NewWriterMaybeCompressed(w, path)
		if err != nil {
			return err
		}
		n, err = l.WriteText(wc, path, encode, time.Now())
		if err != nil {
			_ = wc.Close()
			return err
		}
		return wc.Close()
	})
	if err != nil {
		return 0, fmt.Errorf("entry.Save('%s') failed: %w", path, err)
	}
	log.Verbosef("entry.Save: saved %d entries to '%s'\n", n, path)
	return n, nil
}

// Save is a function version of List.Save
func Save(l *List, path string, encode bool) (int, error) {
	return l.Save(path, encode)
}

func decodeValues(l *List) {
	for _, e := range l.entries {
		e.Value = u.URLDecode(e.Value)
	}
}

// Read reads entries in the format written by WriteText.
// Lines starting with '#' are comments.
// If decode is true, values are url-decoded
func Read(r io.Reader, decode bool) (*List, error) {
	l := &List{}
	_, err := kvfile.Parse(r, func(name, value string) {
		l.Add(name, value)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if decode {
		decodeValues(l)
	}
	return l, nil
}

// Load loads entries from a file saved with Save. Can read compressed
// files (.gz, .bz2, .zst, .br).
// If decode is true, values are url-decoded.
// If the file can't be read, the error wraps ErrNotFound
func Load(path string, decode bool) (*List, error) {
	l := &List{}
	n, err := kvfile.ParseFile(path, func(name, value string) {
		l.Add(name, value)
	})
	if err != nil {
		return nil, fmt.Errorf("entry.Load('%s'): %w: %w", path, ErrNotFound, err)
	}
	if decode {
		decodeValues(l)
	}
	log.Verbosef("entry.Load: loaded %d entries from '%s'\n", n, path)
	return l, nil
}
