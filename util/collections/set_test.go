package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := Set[int]{}

	assert.True(t, set.AddNew(1))
	assert.False(t, set.AddNew(1))
	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(2))

	set.Add(2)
	set.Remove(1)
	assert.False(t, set.Contains(1))
	assert.True(t, set.Contains(2))
	assert.Len(t, set, 1)
}
