package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type pair struct{ a, b int }

	first := Name(pair{1, 2})
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(pair{1, 2}))

	var missing *pair
	assert.Equal(t, "Ø", Name(missing))
	assert.Equal(t, "Ø", Name(nil))
}
