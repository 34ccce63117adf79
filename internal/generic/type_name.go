package generic

import "reflect"

// TypeName 返回值 v 的动态类型名称，用于错误信息。
// 与 reflect.Type.Name 不同，未命名类型（数组、切片、指针）也会返回完整描述。
//
// 示例:
//
//	TypeName(42)              // "int"
//	TypeName([3]string{})     // "[3]string"
//	TypeName(nil)             // "<nil>"
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}

	return reflect.TypeOf(v).String()
}

// ArrayShape 报告 typ 是否为定长数组，并返回其元素类型和长度。
// 切片、指针等一律返回 false，指针不会被自动解引用。
//
// 示例:
//
//	ArrayShape(TypeOf[[4]uint8]())  // uint8, 4, true
//	ArrayShape(TypeOf[[]uint8]())   // nil, 0, false
func ArrayShape(typ reflect.Type) (elem reflect.Type, n int, ok bool) {
	if typ == nil || typ.Kind() != reflect.Array {
		return nil, 0, false
	}

	return typ.Elem(), typ.Len(), true
}
