package entry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/pretty"
)

// Print prints entries for debugging, one per line, as:
// 'name' = 'value'
// If w is nil, prints to stdout. Returns number of printed entries
func (l *List) Print(w io.Writer) int {
	if w == nil {
		w = os.Stdout
	}
	n := 0
	for name, value := range l.All() {
		fmt.Fprintf(w, "'%s' = '%s'\n", name, value)
		n++
	}
	return n
}

type jsonEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MarshalJSON serializes entries as JSON array of {"name": ..., "value": ...}
// objects. We can't use a JSON object because names repeat
func (l *List) MarshalJSON() ([]byte, error) {
	a := make([]jsonEntry, 0, l.Len())
	for name, value := range l.All() {
		a = append(a, jsonEntry{Name: name, Value: value})
	}
	return json.Marshal(a)
}

// UnmarshalJSON is the reverse of MarshalJSON
func (l *List) UnmarshalJSON(d []byte) error {
	var a []jsonEntry
	if err := json.Unmarshal(d, &a); err != nil {
		return err
	}
	l.Clear()
	for _, e := range a {
		if l.Add(e.Name, e.Value) == nil {
			return ErrEmptyName
		}
	}
	return nil
}

// PrintJSON prints entries as indented JSON. If w is nil, prints to stdout
func (l *List) PrintJSON(w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}
	d, err := l.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(pretty.Pretty(d))
	return err
}
