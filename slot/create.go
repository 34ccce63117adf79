package slot

// New 返回空槽位，等价于 Slot[T, A]{}。
func New[T any, A Array[T]]() Slot[T, A] {
	return Slot[T, A]{}
}

// NewSingle 创建持有单值 v 的槽位。
//
//	s := NewSingle[int, [5]int](42)
func NewSingle[T any, A Array[T]](v T) Slot[T, A] {
	var s Slot[T, A]
	s.SetSingle(v)
	return s
}

// NewArray 创建持有数组 a 的槽位，A 可由参数推导。
//
//	s := NewArray[int]([5]int{1, 2, 3, 4, 5})
func NewArray[T any, A Array[T]](a A) Slot[T, A] {
	var s Slot[T, A]
	s.SetArray(a)
	return s
}

// NewFilled 创建所有元素均为 v 的数组槽位。
func NewFilled[T any, A Array[T]](v T) Slot[T, A] {
	var s Slot[T, A]
	s.FillArray(v)
	return s
}
