package entry

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kjk/qentry/assert"
)

func TestPrint(t *testing.T) {
	l := mkList(t, "user", "alice", "x", "a b", "empty", "")
	var buf bytes.Buffer
	n := l.Print(&buf)
	assert.Equal(t, 3, n)
	exp := `'user' = 'alice'
'x' = 'a b'
'empty' = ''
`
	assert.Equal(t, exp, buf.String())

	var empty List
	buf.Reset()
	assert.Equal(t, 0, empty.Print(&buf))
	assert.Equal(t, "", buf.String())
}

func TestJSON(t *testing.T) {
	l := mkList(t, "role", "admin", "role", "root")
	d, err := json.Marshal(l)
	assert.NoError(t, err)
	assert.Equal(t, `[{"name":"role","value":"admin"},{"name":"role","value":"root"}]`, string(d))

	var l2 List
	err = json.Unmarshal(d, &l2)
	assert.NoError(t, err)
	assert.Equal(t, l.Entries(), l2.Entries())

	err = json.Unmarshal([]byte(`[{"name":"","value":"x"}]`), &l2)
	assert.True(t, errors.Is(err, ErrEmptyName))

	var buf bytes.Buffer
	err = l.PrintJSON(&buf)
	assert.NoError(t, err)
	assert.True(t, json.Valid(buf.Bytes()))
	assert.Contains(t, buf.String(), `"root"`)
}
