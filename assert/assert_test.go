package assert

import (
	"fmt"
	"strings"
	"testing"
)

// records failures instead of failing the test
type mockT struct {
	failed bool
	msg    string
}

func (t *mockT) Errorf(format string, args ...interface{}) {
	t.failed = true
	t.msg = fmt.Sprintf(format, args...)
}

func TestEqual(t *testing.T) {
	mt := &mockT{}
	if !Equal(mt, 3, 3) || mt.failed {
		t.Fatalf("3 == 3 should pass")
	}
	if !Equal(mt, []byte("a"), []byte("a")) {
		t.Fatalf("byte slices should be equal")
	}
	if Equal(mt, "foo", "bar") {
		t.Fatalf("foo == bar should fail")
	}
	if !strings.Contains(mt.msg, "Diff:") {
		t.Fatalf("expected diff in '%s'", mt.msg)
	}
}

func TestNilAndEmpty(t *testing.T) {
	mt := &mockT{}
	var p *int
	if !Nil(mt, p) || !Nil(mt, nil) {
		t.Fatalf("nil pointer should be nil")
	}
	if NotNil(mt, p) {
		t.Fatalf("NotNil(nil pointer) should fail")
	}
	mt = &mockT{}
	if !Empty(mt, "") || !Empty(mt, []int{}) || !Empty(mt, 0) {
		t.Fatalf("should be empty")
	}
	if !NotEmpty(mt, []int{1}) || mt.failed {
		t.Fatalf("should not be empty")
	}
	if !Len(mt, []string{"a", "b"}, 2) || Len(mt, 5, 1) {
		t.Fatalf("Len failed")
	}
}

func TestMessages(t *testing.T) {
	mt := &mockT{}
	True(mt, false, "value was %d", 5)
	if !strings.Contains(mt.msg, "value was 5") {
		t.Fatalf("unexpected message: '%s'", mt.msg)
	}
	mt = &mockT{}
	Contains(mt, "hello world", "planet")
	if !mt.failed {
		t.Fatalf("Contains should fail")
	}
}

func TestMessageFromMsgAndArgs(t *testing.T) {
	tests := []struct {
		args []interface{}
		exp  string
	}{
		{nil, ""},
		{[]interface{}{"plain"}, "plain"},
		{[]interface{}{42}, "42"},
		{[]interface{}{"name: '%s' n: %d", "foo", 3}, "name: 'foo' n: 3"},
		{[]interface{}{1, 2}, "[1 2]"},
	}
	for _, tc := range tests {
		got := messageFromMsgAndArgs(tc.args...)
		if got != tc.exp {
			t.Fatalf("messageFromMsgAndArgs(%v): got '%s', expected '%s'", tc.args, got, tc.exp)
		}
	}

	mt := &mockT{}
	Equal(mt, "a", "b", "for key '%s'", "x")
	if !strings.Contains(mt.msg, "Messages: for key 'x'") {
		t.Fatalf("unexpected message: '%s'", mt.msg)
	}
}
