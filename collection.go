package ranged

// 线性集合的最小能力集：长度、尾部追加、尾部弹出。
// 批量操作（ShrinkTo/ExtendTo/Reserve）由这些原语派生，见下方包级函数；
// 实现方可以通过 Shrinkable/Reservable 提供更快的版本
type Collection[T any] interface {
	Size() int
	Push(val T)
	Pop() (T, bool)
}

// 支持批量截断的集合实现此接口，替代逐个 Pop
type Shrinkable interface {
	ShrinkTo(size int)
}

// 有容量概念的集合实现此接口；没有容量概念的集合无需实现
type Reservable interface {
	Reserve(additional int)
}

func IsEmpty[T any](c Collection[T]) bool {
	return c.Size() == 0
}

// 从尾部移除元素直到长度不超过 size
func ShrinkTo[T any](c Collection[T], size int) {
	if s, ok := c.(Shrinkable); ok {
		s.ShrinkTo(size)
		return
	}
	for c.Size() > size {
		c.Pop()
	}
}

// 追加 fill 生成的元素直到长度达到 size，size 不大于当前长度时什么都不做。
// fill 对每个新增的位置恰好调用一次
func ExtendTo[T any](c Collection[T], size int, fill func() T) {
	delta := size - c.Size()
	if delta <= 0 {
		return
	}
	Reserve[T](c, delta)
	for i := 0; i < delta; i++ {
		c.Push(fill())
	}
}

// 容量预留提示。对没有容量概念的集合是空操作；
// 有容量概念的集合保证接下来 additional 次 Push 不触发扩容
func Reserve[T any](c Collection[T], additional int) {
	if r, ok := c.(Reservable); ok {
		r.Reserve(additional)
	}
}
