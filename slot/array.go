package slot

// MaxArity 是 Array 约束支持的最大数组长度。
const MaxArity = 64

// Array 约束元素类型为 T、长度为 1..MaxArity 的定长数组类型（含以其为底层类型的命名类型）。
//
// Go 泛型没有常量参数，数组长度 N 由数组类型本身携带：
// Slot[int, [5]int] 即元素类型 int、长度 5 的槽位。
type Array[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T | ~[9]T | ~[10]T |
		~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T | ~[17]T | ~[18]T | ~[19]T |
		~[20]T | ~[21]T | ~[22]T | ~[23]T | ~[24]T | ~[25]T | ~[26]T | ~[27]T | ~[28]T |
		~[29]T | ~[30]T | ~[31]T | ~[32]T | ~[33]T | ~[34]T | ~[35]T | ~[36]T | ~[37]T |
		~[38]T | ~[39]T | ~[40]T | ~[41]T | ~[42]T | ~[43]T | ~[44]T | ~[45]T | ~[46]T |
		~[47]T | ~[48]T | ~[49]T | ~[50]T | ~[51]T | ~[52]T | ~[53]T | ~[54]T | ~[55]T |
		~[56]T | ~[57]T | ~[58]T | ~[59]T | ~[60]T | ~[61]T | ~[62]T | ~[63]T | ~[64]T
}
