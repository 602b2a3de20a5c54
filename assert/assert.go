package assert

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

// this is a subset of github.com/stretchr/testify/assert
// with only the functions I use

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...interface{})
}

type tHelper interface {
	Helper()
}

func helper(t TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

func messageFromMsgAndArgs(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprintf("%+v", msgAndArgs)
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}

// Fail reports a failure through t
func Fail(t TestingT, failureMessage string, msgAndArgs ...interface{}) bool {
	helper(t)
	msg := messageFromMsgAndArgs(msgAndArgs...)
	if msg == "" {
		t.Errorf("\n%s", failureMessage)
	} else {
		t.Errorf("\n%s\nMessages: %s", failureMessage, msg)
	}
	return false
}

// ObjectsAreEqual determines if two objects are considered equal.
func ObjectsAreEqual(expected, actual interface{}) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}
	exp, ok := expected.([]byte)
	if !ok {
		return reflect.DeepEqual(expected, actual)
	}
	act, ok := actual.([]byte)
	if !ok {
		return false
	}
	if exp == nil || act == nil {
		return exp == nil && act == nil
	}
	return bytes.Equal(exp, act)
}

var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// diff returns a diff of both values as long as both are of the same type and
// are a struct, map, slice, array or string. Otherwise it returns an empty string.
func diff(expected interface{}, actual interface{}) string {
	if expected == nil || actual == nil {
		return ""
	}
	et := reflect.TypeOf(expected)
	if et != reflect.TypeOf(actual) {
		return ""
	}
	var e, a string
	switch et.Kind() {
	case reflect.String:
		e = reflect.ValueOf(expected).String()
		a = reflect.ValueOf(actual).String()
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		e = spewConfig.Sdump(expected)
		a = spewConfig.Sdump(actual)
	default:
		return ""
	}
	d, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(e),
		B:        difflib.SplitLines(a),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	return "\n\nDiff:\n" + d
}

// Equal asserts that two objects are equal.
//
//	assert.Equal(t, 123, 123)
func Equal(t TestingT, expected, actual interface{}, msgAndArgs ...interface{}) bool {
	helper(t)
	if ObjectsAreEqual(expected, actual) {
		return true
	}
	msg := fmt.Sprintf("Not equal:\nexpected: %#v\nactual  : %#v%s", expected, actual, diff(expected, actual))
	return Fail(t, msg, msgAndArgs...)
}

// NotEqual asserts that the specified values are NOT equal.
func NotEqual(t TestingT, expected, actual interface{}, msgAndArgs ...interface{}) bool {
	helper(t)
	if !ObjectsAreEqual(expected, actual) {
		return true
	}
	return Fail(t, fmt.Sprintf("Should not be: %#v", actual), msgAndArgs...)
}

func isNil(object interface{}) bool {
	if object == nil {
		return true
	}
	v := reflect.ValueOf(object)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Nil asserts that the specified object is nil.
func Nil(t TestingT, object interface{}, msgAndArgs ...interface{}) bool {
	helper(t)
	if isNil(object) {
		return true
	}
	return Fail(t, fmt.Sprintf("Expected nil, but got: %#v", object), msgAndArgs...)
}

// NotNil asserts that the specified object is not nil.
func NotNil(t TestingT, object interface{}, msgAndArgs ...interface{}) bool {
	helper(t)
	if !isNil(object) {
		return true
	}
	return Fail(t, "Expected value not to be nil.", msgAndArgs...)
}

// True asserts that the specified value is true.
func True(t TestingT, value bool, msgAndArgs ...interface{}) bool {
	helper(t)
	if value {
		return true
	}
	return Fail(t, "Should be true", msgAndArgs...)
}

// False asserts that the specified value is false.
func False(t TestingT, value bool, msgAndArgs ...interface{}) bool {
	helper(t)
	if !value {
		return true
	}
	return Fail(t, "Should be false", msgAndArgs...)
}

// NoError asserts that a function returned no error (i.e. `nil`).
func NoError(t TestingT, err error, msgAndArgs ...interface{}) bool {
	helper(t)
	if err == nil {
		return true
	}
	return Fail(t, fmt.Sprintf("Received unexpected error:\n%+v", err), msgAndArgs...)
}

// Error asserts that a function returned an error (i.e. not `nil`).
func Error(t TestingT, err error, msgAndArgs ...interface{}) bool {
	helper(t)
	if err != nil {
		return true
	}
	return Fail(t, "An error is expected but got nil.", msgAndArgs...)
}

func getLen(x interface{}) (n int, ok bool) {
	v := reflect.ValueOf(x)
	defer func() {
		if e := recover(); e != nil {
			ok = false
		}
	}()
	return v.Len(), true
}

// Len asserts that the specified object has specific length.
// Len also fails if the object has a type that len() not accept.
func Len(t TestingT, object interface{}, length int, msgAndArgs ...interface{}) bool {
	helper(t)
	l, ok := getLen(object)
	if !ok {
		return Fail(t, fmt.Sprintf("\"%v\" could not be applied builtin len()", object), msgAndArgs...)
	}
	if l != length {
		return Fail(t, fmt.Sprintf("\"%v\" should have %d item(s), but has %d", object, length, l), msgAndArgs...)
	}
	return true
}

func isEmpty(object interface{}) bool {
	if object == nil {
		return true
	}
	v := reflect.ValueOf(object)
	switch v.Kind() {
	case reflect.Chan, reflect.Map, reflect.Slice, reflect.String, reflect.Array:
		return v.Len() == 0
	case reflect.Pointer:
		if v.IsNil() {
			return true
		}
		return isEmpty(v.Elem().Interface())
	}
	return reflect.DeepEqual(object, reflect.Zero(v.Type()).Interface())
}

// Empty asserts that the specified object is empty.  I.e. nil, "", false, 0 or either
// a slice or a channel with len == 0.
func Empty(t TestingT, object interface{}, msgAndArgs ...interface{}) bool {
	helper(t)
	if isEmpty(object) {
		return true
	}
	return Fail(t, fmt.Sprintf("Should be empty, but was %v", object), msgAndArgs...)
}

// NotEmpty asserts that the specified object is NOT empty.
func NotEmpty(t TestingT, object interface{}, msgAndArgs ...interface{}) bool {
	helper(t)
	if !isEmpty(object) {
		return true
	}
	return Fail(t, fmt.Sprintf("Should NOT be empty, but was %v", object), msgAndArgs...)
}

// Contains asserts that s contains substring sub.
//
//	assert.Contains(t, "Hello World", "World")
func Contains(t TestingT, s string, sub string, msgAndArgs ...interface{}) bool {
	helper(t)
	if strings.Contains(s, sub) {
		return true
	}
	return Fail(t, fmt.Sprintf("%#v does not contain %#v", s, sub), msgAndArgs...)
}
