package intersection

import (
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring"
	mapset "github.com/deckarep/golang-set/v2"
)

/*
求两个序列公共元素个数的几种算法，统一按集合语义计数（重复值只算一次）：

	NestedLoop  双重循环，时间复杂度 O(|A|*|B|)，不占用额外内存
	HashSet     分别建集合再求交集，期望时间复杂度 O(|A|+|B|)，额外内存 O(|A|+|B|)
	SortMerge   原地排序后双指针归并，时间复杂度 O(NlogN)，会修改入参
	Roaring     压缩位图求交，仅作为基准对照
*/

const (
	LabelUnsorted = "Unsorted array"
	LabelHashSet  = "HashSet"
	LabelSorted   = "Sorted array"
	LabelRoaring  = "Roaring bitmap"
)

// Comparator 一种求交集大小的策略
type Comparator struct {
	Label string
	// Mutates 为 true 时 Run 会修改入参，调用方必须传入副本
	Mutates bool
	Run     func(a, b Sequence) Result
}

// Standard 返回默认参与比较的三种算法，顺序固定
func Standard() []Comparator {
	return []Comparator{
		{Label: LabelUnsorted, Run: NestedLoop},
		{Label: LabelHashSet, Run: HashSet},
		{Label: LabelSorted, Mutates: true, Run: SortMerge},
	}
}

// WithRoaring 在 Standard 的基础上追加 roaring 位图实现
func WithRoaring() []Comparator {
	return append(Standard(), Comparator{Label: LabelRoaring, Run: Roaring})
}

// NestedLoop 对 A 中每个元素线性扫描 B。
// 只有在 B 中命中后才回头检查 A 的前缀，跳过已经计过数的重复值。
func NestedLoop(a, b Sequence) Result {
	start := time.Now()

	n := 0
	for i, x := range a {
		if !slices.Contains(b, x) {
			continue
		}
		if slices.Contains(a[:i], x) {
			continue
		}
		n++
	}

	return Result{Count: n, Elapsed: time.Since(start)}
}

// HashSet 把两个序列分别放进集合（自动去重），再求交集的基数
func HashSet(a, b Sequence) Result {
	start := time.Now()

	aSet := mapset.NewThreadUnsafeSetWithSize[uint32](len(a))
	bSet := mapset.NewThreadUnsafeSetWithSize[uint32](len(b))
	aSet.Append(a...)
	bSet.Append(b...)

	n := aSet.Intersect(bSet).Cardinality()

	return Result{Count: n, Elapsed: time.Since(start)}
}

// SortMerge 原地排序 a 和 b，再用双指针归并计数。
// 相等时计数一次，并跳过两侧所有相同的值。
func SortMerge(a, b Sequence) Result {
	start := time.Now()

	// 相等元素的先后顺序无关紧要，不稳定排序即可
	slices.Sort(a)
	slices.Sort(b)

	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			v := a[i]
			n++
			for i < len(a) && a[i] == v {
				i++
			}
			for j < len(b) && b[j] == v {
				j++
			}
		}
	}

	return Result{Count: n, Elapsed: time.Since(start)}
}

// Roaring 用压缩位图求交集基数
func Roaring(a, b Sequence) Result {
	start := time.Now()

	n := roaring.BitmapOf(a...).AndCardinality(roaring.BitmapOf(b...))

	return Result{Count: int(n), Elapsed: time.Since(start)}
}
