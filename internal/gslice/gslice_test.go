package gslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeat(t *testing.T) {
	assert.Equal(t, []int{7, 7, 7}, Repeat(7, 3))
	assert.Equal(t, []string{}, Repeat("a", 0))
	assert.Equal(t, []string{}, Repeat("a", -1))

	type Foo struct{ ID int }
	s := Repeat(Foo{ID: 1}, 2)
	s[0].ID = 2
	assert.Equal(t, []Foo{{ID: 2}, {ID: 1}}, s)
}
