package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, s := range []string{"", "xxx", "0", "-1", "1.5", "99999999999"} {
		_, err := ParseID(s)
		assert.ErrorIs(t, err, ErrInvalidID, "input %q", s)
	}
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(64)
	b := GenerateRandomString(64)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Len(t, GenerateRandomString(7), 7)
}
