package slot

import "fmt"

// Mode 标识 Slot 当前持有的变体。
type Mode uint8

const (
	// ModeEmpty 未设置任何值，是 Slot 的零值状态。
	ModeEmpty Mode = iota
	// ModeSingle 持有单个值，对所有 N 个位置统一生效。
	ModeSingle
	// ModeArray 持有长度为 N 的数组，每个位置独立取值。
	ModeArray
)

func (m Mode) String() string {
	switch m {
	case ModeEmpty:
		return "Empty"
	case ModeSingle:
		return "Single"
	case ModeArray:
		return "Array"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}
