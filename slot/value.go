package slot

// Value 是 Slot 的带标签输入：要么是单值，要么是定长数组。
// 调用方在编译期就确定了形状，通过 Slot.Set 写入时无需运行时类型检查。
//
// 示例:
//
//	s.Set(Scalar[int, [5]int](42))
//	s.Set(Sequence[int]([5]int{1, 2, 3, 4, 5}))
type Value[T any, A Array[T]] struct {
	mode   Mode
	single T
	array  A
}

// Scalar 构造单值变体。
func Scalar[T any, A Array[T]](v T) Value[T, A] {
	return Value[T, A]{mode: ModeSingle, single: v}
}

// Sequence 构造数组变体，A 可由参数推导。
func Sequence[T any, A Array[T]](a A) Value[T, A] {
	return Value[T, A]{mode: ModeArray, array: a}
}

// Mode 返回变体类型；零值 Value 为 ModeEmpty。
func (v Value[T, A]) Mode() Mode {
	return v.mode
}

// IsScalar 报告是否为单值变体。
func (v Value[T, A]) IsScalar() bool {
	return v.mode == ModeSingle
}

// Unwrap 返回变体内容，未使用的一侧为零值。
func (v Value[T, A]) Unwrap() (T, A, Mode) {
	return v.single, v.array, v.mode
}
