package gslice

// Repeat 返回长度为 n、每个元素都等于 v 的新切片。
// n <= 0 时返回空切片（非 nil）。
//
// 示例：
//
//	Repeat(7, 3)    ⏩ []int{7, 7, 7}
//	Repeat("a", 0)  ⏩ []string{}
func Repeat[T any](v T, n int) []T {
	if n < 0 {
		n = 0
	}

	s := make([]T, n)
	for i := range s {
		s[i] = v
	}

	return s
}
