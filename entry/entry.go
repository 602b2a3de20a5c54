package entry

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/kjk/qentry/u"
)

var (
	// ErrEmptyName is returned when adding entry with empty name
	ErrEmptyName = errors.New("empty name")
	// ErrNotFound is returned by Load when the file couldn't be read or parsed
	ErrNotFound = errors.New("not found")
)

// Entry is a single name / value pair. Name is never empty
type Entry struct {
	Name  string
	Value string
}

// AddMode tells Insert what to do if an entry with the same name exists
type AddMode int

const (
	// Append always adds a new entry at the end
	Append AddMode = iota
	// Replace changes the value of the first entry with the same name.
	// If there's none, it appends
	Replace
)

// Match tells which entry to pick when there's more than one
// with the same name
type Match int

const (
	// First is the first entry with exactly the same name
	First Match = iota
	// Last is the last entry with exactly the same name
	Last
	// FirstNoCase is the first entry with the same name, ignoring
	// ASCII case
	FirstNoCase
)

// List is an ordered list of entries. Names can repeat.
// Zero value is an empty list ready to use.
// Methods that only read can be called on nil *List
type List struct {
	entries []*Entry
}

// New returns a list with name / value pairs from nameVals
func New(nameVals ...string) (*List, error) {
	n := len(nameVals)
	if n%2 != 0 {
		return nil, errors.New("odd number of arguments")
	}
	l := &List{}
	for i := 0; i < n; i += 2 {
		if l.Add(nameVals[i], nameVals[i+1]) == nil {
			return nil, ErrEmptyName
		}
	}
	return l, nil
}

// Insert adds name / value according to mode.
// Returns added or updated entry or nil if name is empty
// (in which case the list is not changed)
func (l *List) Insert(name, value string, mode AddMode) *Entry {
	if name == "" {
		return nil
	}
	if mode == Replace {
		for _, e := range l.entries {
			if e.Name == name {
				e.Value = value
				return e
			}
		}
	}
	e := &Entry{
		Name:  name,
		Value: value,
	}
	l.entries = append(l.entries, e)
	return e
}

// Add appends a new entry
func (l *List) Add(name, value string) *Entry {
	return l.Insert(name, value, Append)
}

// Put sets the value of first entry with this name or appends
// a new entry
func (l *List) Put(name, value string) *Entry {
	return l.Insert(name, value, Replace)
}

// Remove removes all entries with name. Order of other
// entries is preserved. Returns number of removed entries
func (l *List) Remove(name string) int {
	if l == nil || name == "" {
		return 0
	}
	n := len(l.entries)
	l.entries = slices.DeleteFunc(l.entries, func(e *Entry) bool {
		return e.Name == name
	})
	return n - len(l.entries)
}

// Reverse reverses order of entries in place
func (l *List) Reverse() {
	if l == nil {
		return
	}
	slices.Reverse(l.entries)
}

// Clear removes all entries. The list can be re-used
func (l *List) Clear() {
	if l == nil {
		return
	}
	clear(l.entries)
	l.entries = l.entries[:0]
}

// Len returns number of entries
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// At returns entry at 0-based position i or nil if i is out of range
func (l *List) At(i int) *Entry {
	if i < 0 || i >= l.Len() {
		return nil
	}
	return l.entries[i]
}

func (l *List) find(name string, match Match) *Entry {
	if l == nil {
		return nil
	}
	var res *Entry
	for _, e := range l.entries {
		switch match {
		case First:
			if e.Name == name {
				return e
			}
		case Last:
			// later entries override earlier ones so we have
			// to look at all of them
			if e.Name == name {
				res = e
			}
		case FirstNoCase:
			if u.EqualFoldASCII(e.Name, name) {
				return e
			}
		}
	}
	return res
}

// Lookup returns the value of entry with name, picked according to match
func (l *List) Lookup(name string, match Match) (string, bool) {
	e := l.find(name, match)
	if e == nil {
		return "", false
	}
	return e.Value, true
}

// Get returns the value of the first entry with name
func (l *List) Get(name string) (string, bool) {
	return l.Lookup(name, First)
}

// GetLast returns the value of the last entry with name
func (l *List) GetLast(name string) (string, bool) {
	return l.Lookup(name, Last)
}

// GetNoCase is like Get but compares names ignoring ASCII case
func (l *List) GetNoCase(name string) (string, bool) {
	return l.Lookup(name, FirstNoCase)
}

// atoi works like C atoi(): skips leading white space, accepts a sign
// and parses digits up to the first non-digit.
// Returns 0 if there are no digits or the number overflows int
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}

// LookupInt is like Lookup but converts the value to int.
// Returns 0 both when there's no entry and when the value is not a number
func (l *List) LookupInt(name string, match Match) int {
	v, ok := l.Lookup(name, match)
	if !ok {
		return 0
	}
	return atoi(v)
}

func (l *List) Int(name string) int {
	return l.LookupInt(name, First)
}

func (l *List) IntLast(name string) int {
	return l.LookupInt(name, Last)
}

func (l *List) IntNoCase(name string) int {
	return l.LookupInt(name, FirstNoCase)
}

// IndexOf returns 1-based position of the first entry with name
// or 0 if there is none
func (l *List) IndexOf(name string) int {
	if l == nil {
		return 0
	}
	for i, e := range l.entries {
		if e.Name == name {
			return i + 1
		}
	}
	return 0
}

// All iterates over name / value of all entries, in order
//
//	for name, value := range l.All() {
//	}
func (l *List) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if l == nil {
			return
		}
		for _, e := range l.entries {
			if !yield(e.Name, e.Value) {
				return
			}
		}
	}
}

// Entries returns a copy of entries
func (l *List) Entries() []Entry {
	res := make([]Entry, 0, l.Len())
	for name, value := range l.All() {
		res = append(res, Entry{Name: name, Value: value})
	}
	return res
}

// Names returns names of all entries, in order. Names can repeat
func (l *List) Names() []string {
	res := make([]string, 0, l.Len())
	for name := range l.All() {
		res = append(res, name)
	}
	return res
}
