package generic

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, reflect.TypeOf(0), TypeOf[int]())
	assert.Equal(t, reflect.TypeOf([5]int{}), TypeOf[[5]int]())
	assert.Equal(t, reflect.Interface, TypeOf[error]().Kind())
	assert.Equal(t, reflect.Interface, TypeOf[any]().Kind())
}

func TestTypeName(t *testing.T) {
	type Named [2]int

	assert.Equal(t, "<nil>", TypeName(nil))
	assert.Equal(t, "int", TypeName(42))
	assert.Equal(t, "[3]string", TypeName([3]string{}))
	assert.Equal(t, "[]float64", TypeName([]float64{}))
	assert.Equal(t, "generic.Named", TypeName(Named{}))
}

func TestArrayShape(t *testing.T) {
	type rgb [3]uint8

	elem, n, ok := ArrayShape(TypeOf[[4]uint8]())
	assert.True(t, ok)
	assert.Equal(t, TypeOf[uint8](), elem)
	assert.Equal(t, 4, n)

	elem, n, ok = ArrayShape(TypeOf[rgb]())
	assert.True(t, ok)
	assert.Equal(t, TypeOf[uint8](), elem)
	assert.Equal(t, 3, n)

	_, _, ok = ArrayShape(TypeOf[[]string]())
	assert.False(t, ok)

	_, _, ok = ArrayShape(TypeOf[*[4]int]())
	assert.False(t, ok)

	_, _, ok = ArrayShape(TypeOf[map[int]int]())
	assert.False(t, ok)

	_, _, ok = ArrayShape(nil)
	assert.False(t, ok)
}
