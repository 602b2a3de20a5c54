package kvfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kjk/qentry/assert"
	"github.com/kjk/qentry/require"
)

type kv struct {
	name  string
	value string
}

func parseString(t *testing.T, s string) []kv {
	var res []kv
	n, err := Parse(strings.NewReader(s), func(name, value string) {
		res = append(res, kv{name, value})
	})
	assert.NoError(t, err)
	assert.Equal(t, len(res), n)
	return res
}

func TestParse(t *testing.T) {
	s := `# automatically generated by qentry at Sun, 18 Oct 2026 12:30:05 GMT.
# /tmp/foo.txt
user=alice
  role = admin
role=root

no equal sign
=no name
x=a=b
empty=
  # indented comment
`
	got := parseString(t, s)
	exp := []kv{
		{"user", "alice"},
		{"role", "admin"},
		{"role", "root"},
		{"x", "a=b"},
		{"empty", ""},
	}
	assert.Equal(t, exp, got)
}

func TestParseNewlines(t *testing.T) {
	got := parseString(t, "a=1\r\nb=2\rc=3")
	exp := []kv{{"a", "1"}, {"b", "2"}, {"c", "3"}}
	assert.Equal(t, exp, got)

	got = parseString(t, "")
	assert.Equal(t, 0, len(got))
}

func TestParseLongValue(t *testing.T) {
	long := strings.Repeat("x", 100*1024)
	got := parseString(t, "long="+long+"\n")
	require.Len(t, got, 1)
	assert.Equal(t, long, got[0].value)
}

func TestParseLine(t *testing.T) {
	name, value, ok := ParseLine(" foo = bar baz ")
	assert.True(t, ok)
	assert.Equal(t, "foo", name)
	assert.Equal(t, "bar baz", value)

	_, _, ok = ParseLine("#foo=bar")
	assert.False(t, ok)
}

func TestParseMap(t *testing.T) {
	m := ParseMap([]byte("A=1\nB=2\nA=3\n"))
	assert.Equal(t, map[string]string{"A": "3", "B": "2"}, m)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	err := os.WriteFile(path, []byte("foo=bar\n"), 0644)
	require.NoError(t, err)
	var names []string
	n, err := ParseFile(path, func(name, value string) {
		names = append(names, name)
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"foo"}, names)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.env"), func(name, value string) {})
	assert.Error(t, err)
}
