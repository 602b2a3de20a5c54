package require

import "github.com/kjk/qentry/assert"

// like assert but stops the test on failure.
// only has the functions tests need before they can go on
// (e.g. a file must be written before it's loaded back)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

// NoError asserts that a function returned no error (i.e. `nil`).
//
//	list, err := entry.Load(path, true)
//	require.NoError(t, err)
func NoError(t TestingT, err error, msgAndArgs ...interface{}) {
	if assert.NoError(t, err, msgAndArgs...) {
		return
	}
	t.FailNow()
}

// Error asserts that a function returned an error (i.e. not `nil`).
func Error(t TestingT, err error, msgAndArgs ...interface{}) {
	if assert.Error(t, err, msgAndArgs...) {
		return
	}
	t.FailNow()
}

// NotNil asserts that the specified object is not nil.
func NotNil(t TestingT, object interface{}, msgAndArgs ...interface{}) {
	if assert.NotNil(t, object, msgAndArgs...) {
		return
	}
	t.FailNow()
}

// Equal asserts that two objects are equal.
func Equal(t TestingT, expected interface{}, actual interface{}, msgAndArgs ...interface{}) {
	if assert.Equal(t, expected, actual, msgAndArgs...) {
		return
	}
	t.FailNow()
}

// Len asserts that the specified object has specific length.
func Len(t TestingT, object interface{}, length int, msgAndArgs ...interface{}) {
	if assert.Len(t, object, length, msgAndArgs...) {
		return
	}
	t.FailNow()
}
