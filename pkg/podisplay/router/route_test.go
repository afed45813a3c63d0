package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHash(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"", ""},
		{"#", ""},
		{"#/", ""},
		{"#/main", "main"},
		{"/second/", "second"},
		{"orders/42", "orders/42"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeHash(tt.raw), "raw %q", tt.raw)
	}
}

func TestCompileRejectsBadPatterns(t *testing.T) {
	_, err := compile(Route{Pattern: "main"})
	require.ErrorIs(t, err, ErrInvalidPattern)

	_, err = compile(Route{Name: "x", Pattern: "a//b"})
	require.ErrorIs(t, err, ErrInvalidPattern)

	_, err = compile(Route{Name: "x", Pattern: "orders/:tab:/{id}"})
	require.ErrorIs(t, err, ErrInvalidPattern)
}

func TestRouteMatchAndBuild(t *testing.T) {
	route, err := compile(Route{Name: "order", Pattern: "orders/{id}/:tab:"})
	require.NoError(t, err)

	params, ok := route.match("orders/42")
	require.True(t, ok)
	assert.Equal(t, Params{"id": "42"}, params)

	params, ok = route.match("orders/42/items")
	require.True(t, ok)
	assert.Equal(t, Params{"id": "42", "tab": "items"}, params)

	_, ok = route.match("orders")
	assert.False(t, ok)

	_, ok = route.match("customers/42")
	assert.False(t, ok)

	_, ok = route.match("orders/42/items/extra")
	assert.False(t, ok)

	path, err := route.build(Params{"id": "a b"})
	require.NoError(t, err)
	assert.Equal(t, "orders/a%20b", path)

	params, ok = route.match(path)
	require.True(t, ok)
	assert.Equal(t, "a b", params["id"])

	_, err = route.build(nil)
	require.ErrorIs(t, err, ErrMissingParameter)
}

func TestHistory(t *testing.T) {
	h := NewHistory("")
	h.Push("/main")
	h.Push("/second")

	assert.Equal(t, 3, h.Len())
	assert.True(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())

	hash, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, "/main", hash)

	h.Push("/orders/1")
	assert.Equal(t, 3, h.Len(), "push after back drops forward entries")
	assert.False(t, h.CanGoForward())

	h.Back()
	h.Back()
	_, ok = h.Back()
	assert.False(t, ok)
	assert.Equal(t, "", h.Current())
}
