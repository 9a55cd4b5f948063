package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizer_Digest(t *testing.T) {
	c := NewCanonicalizer(NewJSON())

	a, err := c.Canonicalize(map[string]interface{}{"b": 1, "a": "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"x","b":1}`, string(a))

	d1, err := c.Digest(map[string]interface{}{"votes": 3, "label": "A"})
	require.NoError(t, err)
	d2, err := c.Digest(map[string]interface{}{"label": "A", "votes": 3})
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)

	d3, err := c.Digest(map[string]interface{}{"label": "A", "votes": 4})
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)
}
