// Package kvfile parses files with "name=value" lines, like
// .env files or files written by entry.Save.
//
// The format is line-oriented:
//   - empty lines are ignored
//   - lines that start with '#' are comments
//   - lines without '=' are ignored
//   - name is everything before the first '=', value everything after it
//   - name and value are trimmed of white space
//   - lines with empty name are ignored
package kvfile

import (
	"bytes"
	"io"
	"strings"

	"github.com/kjk/qentry/u"
)

// ParseLine parses a single line. Returns false if it's not a
// "name=value" line
func ParseLine(line string) (name string, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return "", "", false
	}
	name, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(value), true
}

// Parse reads r line by line and calls fn for every name / value pair,
// in the order they appear. Returns number of pairs
func Parse(r io.Reader, fn func(name, value string)) (int, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	d = u.NormalizeNewlinesInPlace(d)
	n := 0
	for _, line := range strings.Split(string(d), "\n") {
		name, value, ok := ParseLine(line)
		if !ok {
			continue
		}
		fn(name, value)
		n++
	}
	return n, nil
}

// ParseFile is like Parse but reads from a file, which might be
// compressed (.gz, .bz2, .zst, .br)
func ParseFile(path string, fn func(name, value string)) (int, error) {
	f, err := u.OpenFileMaybeCompressed(path)
	if err != nil {
		return 0, err
	}
	defer u.CloseNoError(f)
	return Parse(f, fn)
}

// ParseMap parses d into a map. If a name is repeated, the last value wins
func ParseMap(d []byte) map[string]string {
	m := map[string]string{}
	// can't fail because bytes.Reader doesn't fail
	_, _ = Parse(bytes.NewReader(d), func(name, value string) {
		m[name] = value
	})
	return m
}
