package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errSecond, "loading apartment")

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(nil, errFirst))
	assert.False(t, IsAny(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	wrapped := Wrapf(errFirst, "id=%d", 7)

	assert.Equal(t, errFirst, Cause(wrapped))
	assert.True(t, Is(wrapped, errFirst))
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrapKeepsCause")
}

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codedError{code: "FORBIDDEN"}, "updating apartment")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "FORBIDDEN", got.code)

	_, ok = AsType[*codedError](errFirst)
	assert.False(t, ok)
}
