// Package slot 提供 Slot：一个要么持有单个 T、要么持有定长 [N]T 数组的泛型容器。
//
// 典型场景是配置项既可以"统一"（一个值作用于全部 N 个位置），
// 也可以"逐位"（N 个独立的值）。调用方只需声明一个字段类型，
// 不必为每个字段手写枚举加两个可选字段。
//
//	var gain slot.Slot[float32, [4]float32]
//	gain.SetSingle(0.5)                           // 四个通道统一 0.5
//	gain.SetArray([4]float32{0.1, 0.2, 0.3, 0.4}) // 每个通道独立
//
// 两种变体互斥：写入一种会清空另一种。Slot 不做内部同步，
// 并发使用时由调用方加锁或各自持有实例。
package slot

import (
	"fmt"
	"reflect"

	"github.com/favbox/typedslot/internal/generic"
	"github.com/favbox/typedslot/internal/gslice"
)

// Slot 持有单值 T 或定长数组 A（A 为 [N]T），二者至多其一。
// 零值即为 ModeEmpty 状态，可直接使用。
type Slot[T any, A Array[T]] struct {
	mode   Mode
	single T // 仅 mode == ModeSingle 时有效，否则为零值
	array  A // 仅 mode == ModeArray 时有效，否则为零值
}

// SetSingle 写入单值并清空数组。
func (s *Slot[T, A]) SetSingle(v T) {
	var zero A
	s.single = v
	s.array = zero
	s.mode = ModeSingle
}

// SetArray 写入数组并清空单值。长度由类型 A 保证。
func (s *Slot[T, A]) SetArray(a A) {
	var zero T
	s.array = a
	s.single = zero
	s.mode = ModeArray
}

// FillArray 写入所有元素均为 v 的数组，等价于 SetArray([N]T{v, v, ...})。
func (s *Slot[T, A]) FillArray(v T) {
	var a A
	for i := 0; i < len(a); i++ {
		a[i] = v
	}
	s.SetArray(a)
}

// Set 写入带标签的 Value。零值 Value 不改变槽位。
func (s *Slot[T, A]) Set(v Value[T, A]) {
	switch v.mode {
	case ModeSingle:
		s.SetSingle(v.single)
	case ModeArray:
		s.SetArray(v.array)
	}
}

// SetValue 根据 v 的动态类型写入单值或数组。
//
// 判定顺序与 TypeMatches 完全一致：
//  1. v 的类型恰为 A：写入数组；
//  2. v 的类型恰为 T：写入单值；
//  3. v 是元素类型恰为 T、长度为 N 的其他定长数组（如命名数组）：逐元素复制后写入数组；
//  4. T 为接口类型且 v 实现了 T：写入单值；
//  5. 其余情况（含 nil、切片、指针）返回 ErrTypeMismatch，槽位保持不变。
func (s *Slot[T, A]) SetValue(v any) error {
	val, ok := s.resolve(v)
	if !ok {
		return fmt.Errorf("%w: got %s, want %s or %s",
			ErrTypeMismatch, generic.TypeName(v), s.ElementType(), s.ArrayType())
	}

	s.Set(val)
	return nil
}

// TypeMatches 报告 SetValue(v) 是否会成功，不修改槽位。
func (s Slot[T, A]) TypeMatches(v any) bool {
	_, ok := s.resolve(v)
	return ok
}

// resolve 是 SetValue 和 TypeMatches 共用的判定过程。
func (s Slot[T, A]) resolve(v any) (Value[T, A], bool) {
	if a, ok := v.(A); ok {
		return Sequence[T](a), true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Value[T, A]{}, false
	}

	if rv.Type() == s.ElementType() {
		return Scalar[T, A](v.(T)), true
	}

	if elem, n, ok := generic.ArrayShape(rv.Type()); ok && elem == s.ElementType() && n == s.ArrayLength() {
		var a A
		for i := 0; i < len(a); i++ {
			// 接口元素为 nil 时断言失败，保留零值即可
			a[i], _ = rv.Index(i).Interface().(T)
		}
		return Sequence[T](a), true
	}

	// 只有 T 为接口类型时才会走到这里
	if x, ok := v.(T); ok {
		return Scalar[T, A](x), true
	}

	return Value[T, A]{}, false
}

// GetSingle 返回单值；未持有单值时 ok 为 false。
func (s Slot[T, A]) GetSingle() (v T, ok bool) {
	if s.mode != ModeSingle {
		return v, false
	}
	return s.single, true
}

// GetArray 返回数组副本；未持有数组时 ok 为 false。
func (s Slot[T, A]) GetArray() (a A, ok bool) {
	if s.mode != ModeArray {
		return a, false
	}
	return s.array, true
}

// ExpectSingle 返回单值，未持有单值时返回 ErrExpectingNonNullValue。
// 适用于调用方已确定模式、不想处理 ok 的场景。
func (s Slot[T, A]) ExpectSingle() (T, error) {
	v, ok := s.GetSingle()
	if !ok {
		return v, fmt.Errorf("%w: slot holds %s, want %s", ErrExpectingNonNullValue, s.mode, ModeSingle)
	}
	return v, nil
}

// ExpectArray 返回数组副本，未持有数组时返回 ErrExpectingNonNullValue。
func (s Slot[T, A]) ExpectArray() (A, error) {
	a, ok := s.GetArray()
	if !ok {
		return a, fmt.Errorf("%w: slot holds %s, want %s", ErrExpectingNonNullValue, s.mode, ModeArray)
	}
	return a, nil
}

// Mode 返回当前持有的变体。
func (s Slot[T, A]) Mode() Mode {
	return s.mode
}

// IsSingle 报告是否持有单值。
func (s Slot[T, A]) IsSingle() bool {
	return s.mode == ModeSingle
}

// IsArray 报告是否持有数组。
func (s Slot[T, A]) IsArray() bool {
	return s.mode == ModeArray
}

// IsInitialized 报告槽位是否已写入过任一变体。
func (s Slot[T, A]) IsInitialized() bool {
	return s.mode != ModeEmpty
}

// At 返回第 i 个位置的有效值：单值模式下所有位置都是该单值，
// 数组模式下为 array[i]。空槽位或 i 越界时 ok 为 false。
func (s Slot[T, A]) At(i int) (v T, ok bool) {
	if i < 0 || i >= s.ArrayLength() {
		return v, false
	}

	switch s.mode {
	case ModeSingle:
		return s.single, true
	case ModeArray:
		return s.array[i], true
	default:
		return v, false
	}
}

// Values 返回长度为 N 的逐位视图（新切片）。单值模式下重复 N 次，空槽位返回 nil。
func (s Slot[T, A]) Values() []T {
	switch s.mode {
	case ModeSingle:
		return gslice.Repeat(s.single, s.ArrayLength())
	case ModeArray:
		out := make([]T, len(s.array))
		for i := range out {
			out[i] = s.array[i]
		}
		return out
	default:
		return nil
	}
}

// ElementType 返回 T 的类型描述，无需持有值。
func (s Slot[T, A]) ElementType() reflect.Type {
	return generic.TypeOf[T]()
}

// ArrayType 返回 A 的类型描述。
func (s Slot[T, A]) ArrayType() reflect.Type {
	return generic.TypeOf[A]()
}

// ArrayLength 返回 N。
func (s Slot[T, A]) ArrayLength() int {
	var a A
	return len(a)
}

// String 按模式输出 Empty、Single(v) 或 Array([...])。
func (s Slot[T, A]) String() string {
	switch s.mode {
	case ModeSingle:
		return fmt.Sprintf("Single(%v)", s.single)
	case ModeArray:
		return fmt.Sprintf("Array(%v)", s.array)
	default:
		return ModeEmpty.String()
	}
}
