package u

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// NormalizeNewlinesInPlace changes CRLF (Windows) and
// CR (Mac) to LF (Unix)
// Optimized for speed, modifies data in place
func NormalizeNewlinesInPlace(d []byte) []byte {
	wi := 0
	n := len(d)
	for i := 0; i < n; i++ {
		c := d[i]
		// 13 is CR
		if c != 13 {
			d[wi] = c
			wi++
			continue
		}
		// replace CR (mac / win) with LF (unix)
		d[wi] = 10
		wi++
		if i < n-1 && d[i+1] == 10 {
			// this was CRLF, so skip the LF
			i++
		}
	}
	return d[:wi]
}

// NormalizeNewlines is like NormalizeNewlinesInPlace but
// makes a copy of data
func NormalizeNewlines(d []byte) []byte {
	d = append([]byte{}, d...)
	return NormalizeNewlinesInPlace(d)
}

// URLEncode escapes s so that it can be safely used as a value in
// "name=value" line or url query.
// Unlike url.QueryEscape, space becomes %20 and not +
func URLEncode(s string) string {
	s = url.QueryEscape(s)
	// QueryEscape encodes a literal '+' as %2B so every '+' left is a space
	return strings.ReplaceAll(s, "+", "%20")
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// URLDecode reverses URLEncode. It also decodes '+' as space.
// It's lenient: invalid % escapes are left as-is instead of failing
func URLDecode(s string) string {
	if res, err := url.QueryUnescape(s); err == nil {
		return res
	}
	var sb strings.Builder
	n := len(s)
	for i := 0; i < n; i++ {
		c := s[i]
		switch c {
		case '+':
			sb.WriteByte(' ')
		case '%':
			if i+2 < n {
				hi, ok1 := unhex(s[i+1])
				lo, ok2 := unhex(s[i+2])
				if ok1 && ok2 {
					sb.WriteByte(hi<<4 | lo)
					i += 2
					continue
				}
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// EqualFoldASCII is like strings.EqualFold but only folds ASCII letters.
// Non-ASCII bytes must match exactly
func EqualFoldASCII(s1, s2 string) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := 0; i < len(s1); i++ {
		if asciiLower(s1[i]) != asciiLower(s2[i]) {
			return false
		}
	}
	return true
}

// FormatGMT formats t as e.g. "Mon, 02 Jan 2006 15:04:05 GMT"
func FormatGMT(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
