//go:build unit

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndIs(t *testing.T) {
	sentinel := New("invalid quote")
	cause := errors.New("discount amount cannot be negative")

	marked := Mark(cause, sentinel)

	assert.True(t, Is(marked, sentinel))
	assert.True(t, Is(marked, cause))
	assert.Equal(t, cause.Error(), marked.Error())
	assert.Equal(t, sentinel, Mark(nil, sentinel))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))

	cause := New("connection refused")
	wrapped := Wrap(cause, "find course")
	assert.EqualError(t, wrapped, "find course: connection refused")
	assert.True(t, Is(wrapped, cause))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, ExtractStackLines(nil, 5))

	lines := ExtractStackLines(Wrap(New("boom"), "load"), 3)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "load: boom")
}
