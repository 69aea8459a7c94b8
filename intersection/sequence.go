package intersection

import (
	"slices"
	"time"
)

// 基准输入规模：A 为 [0, 2^17)，B 为 [0, 2^16)，B 是 A 的子集，交集大小恒为 SizeB
const (
	SizeA = 1 << 17
	SizeB = 1 << 16
)

// Sequence 有序、可索引的 uint32 序列
type Sequence []uint32

// Range 返回 [0, n) 的连续序列
func Range(n int) Sequence {
	s := make(Sequence, n)
	for i := range n {
		s[i] = uint32(i)
	}
	return s
}

// Inputs 生成基准使用的两条固定输入
func Inputs() (a, b Sequence) {
	return Range(SizeA), Range(SizeB)
}

// Clone 返回独立持有的副本，修改副本不会影响原序列
func (s Sequence) Clone() Sequence {
	return slices.Clone(s)
}

// Result 一次比较的结果：交集元素个数与耗时
type Result struct {
	Count   int
	Elapsed time.Duration
}
