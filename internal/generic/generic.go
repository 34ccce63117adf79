package generic

import "reflect"

// TypeOf 返回 T 的 reflect.Type。
// 对接口类型同样有效，不需要持有 T 的值。
//
// 示例:
//
//	TypeOf[int]()     // reflect.TypeOf(int)
//	TypeOf[[5]int]()  // reflect.TypeOf([5]int)
//	TypeOf[error]()   // error 接口类型，而非 nil
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
