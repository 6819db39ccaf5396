package ranged

import (
	"errors"
	"fmt"
	"math"
)

var (
	// 长度超过上界
	ErrTooLarge = errors.New("ranged: size above max")
	// 长度低于下界
	ErrTooSmall = errors.New("ranged: size below min")
)

// 长度被限制在闭区间 [min, max] 内的线性集合。
// 除 Inner 这个显式的逃生通道外，任何公开操作返回后都满足 min <= Size() <= max。
// 界在构造时固定，之后不可变；包装器独占底层集合，内部不加锁，
// 跨协程共享同一个包装器需要调用方自行互斥
type Ranged[T any, C Collection[T]] struct {
	inner C
	min   int
	max   int
}

// 校验式构造。长度在界内返回包装器；越界时返回 ErrTooLarge/ErrTooSmall，
// inner 不会被修改，所有权仍归调用方
func New[T any, C Collection[T]](inner C, min, max int) (*Ranged[T, C], error) {
	checkBounds(min, max)
	if err := Check[T](inner, min, max); err != nil {
		return nil, err
	}
	return &Ranged[T, C]{inner: inner, min: min, max: max}, nil
}

// 适配式构造，总是成功：过长截断到 max，过短用 fill 补齐到 min
func NewFit[T any, C Collection[T]](inner C, min, max int, fill func() T) *Ranged[T, C] {
	checkBounds(min, max)
	size := inner.Size()
	if size > max {
		ShrinkTo[T](inner, max)
	} else if size < min {
		ExtendTo[T](inner, min, fill)
	}
	return &Ranged[T, C]{inner: inner, min: min, max: max}
}

// 默认构造：产出长度恰为 min 的包装器，元素由 fill 生成
func NewMin[T any, C Collection[T]](inner C, min, max int, fill func() T) *Ranged[T, C] {
	checkBounds(min, max)
	ShrinkTo[T](inner, min)
	ExtendTo[T](inner, min, fill)
	return &Ranged[T, C]{inner: inner, min: min, max: max}
}

// 非空特化：界为 [1, math.MaxInt]
func NewNonEmpty[T any, C Collection[T]](inner C) (*Ranged[T, C], error) {
	return New[T](inner, 1, math.MaxInt)
}

// 定长特化：界为 [size, size]
func NewExact[T any, C Collection[T]](inner C, size int) (*Ranged[T, C], error) {
	return New[T](inner, size, size)
}

// 纯判定：长度落在 [min, max] 内返回 nil，否则返回带方向的错误
func Check[T any](c Collection[T], min, max int) error {
	size := c.Size()
	if size > max {
		return fmt.Errorf("size %d, bounds [%d, %d]: %w", size, min, max, ErrTooLarge)
	}
	if size < min {
		return fmt.Errorf("size %d, bounds [%d, %d]: %w", size, min, max, ErrTooSmall)
	}
	return nil
}

// min > max 的界不可能有合法实例，属于编程错误，在构造点直接 panic
func checkBounds(min, max int) {
	if min < 0 || min > max {
		panic(fmt.Sprintf("ranged: invalid bounds [%d, %d]", min, max))
	}
}

func (r *Ranged[T, C]) Size() int { return r.inner.Size() }

func (r *Ranged[T, C]) IsEmpty() bool { return r.inner.Size() == 0 }

func (r *Ranged[T, C]) Min() int { return r.min }

func (r *Ranged[T, C]) Max() int { return r.max }

// 返回底层集合。这是一个逃生通道：直接修改它可能破坏长度不变量，
// 恢复不变量是调用方的责任（可借助 MakeFit），常规的复合修改请用 Mutate
func (r *Ranged[T, C]) Inner() C { return r.inner }

// 追加一个元素。长度已达 max 时返回 ErrTooLarge，元素不会被写入
func (r *Ranged[T, C]) Push(val T) error {
	if r.inner.Size() >= r.max {
		return ErrTooLarge
	}
	r.inner.Push(val)
	return nil
}

// 弹出尾部元素。长度已到 min 时返回 false，即使底层集合仍有元素可弹
func (r *Ranged[T, C]) Pop() (T, bool) {
	if r.inner.Size() <= r.min {
		var zero T
		return zero, false
	}
	return r.inner.Pop()
}

// 对底层集合执行任意修改，期间允许临时越界；返回前用 MakeFit(fill) 恢复不变量
func (r *Ranged[T, C]) Mutate(fill func() T, mutator func(inner C)) {
	mutator(r.inner)
	r.MakeFit(fill)
}

// 恢复不变量：过长收缩到下界 min（不是 max），过短用 fill 扩充到上界 max（不是 min）。
// 需要收缩到 max 的调用方应显式使用 ShrinkTo
func (r *Ranged[T, C]) MakeFit(fill func() T) {
	size := r.inner.Size()
	if size > r.max {
		ShrinkTo[T](r.inner, r.min)
	} else if size < r.min {
		ExtendTo[T](r.inner, r.max, fill)
	}
}

// 解除包装并返回底层集合，长度不变量不再被追踪；之后不应再使用包装器
func (r *Ranged[T, C]) IntoInner() C {
	return r.inner
}

// 只读视图。底层集合未实现 Viewer 时 ok 为 false
func (r *Ranged[T, C]) View() ([]T, bool) {
	if v, ok := any(r.inner).(Viewer[T]); ok {
		return v.View(), true
	}
	return nil, false
}

// 可变视图，委托给 MutViewer 并继承其约定：只能改元素值，不能改长度。
// 底层集合未实现 MutViewer 时 ok 为 false
func (r *Ranged[T, C]) ViewMut() ([]T, bool) {
	if v, ok := any(r.inner).(MutViewer[T]); ok {
		return v.ViewMut(), true
	}
	return nil, false
}
