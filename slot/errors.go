package slot

import "errors"

var (
	// ErrTypeMismatch 表示 SetValue 的输入既不是 T，也不是长度为 N 的 T 序列。
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrExpectingNonNullValue 表示 ExpectSingle/ExpectArray 调用时槽位未持有对应变体。
	ErrExpectingNonNullValue = errors.New("expecting non-null value")
)
