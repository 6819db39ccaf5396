package collection

import (
	"fmt"

	"github.com/sooomo/ranged"
)

var (
	_ ranged.Collection[int] = (*ArrayList[int])(nil)
	_ ranged.Shrinkable      = (*ArrayList[int])(nil)
	_ ranged.Reservable      = (*ArrayList[int])(nil)
	_ ranged.Viewer[int]     = (*ArrayList[int])(nil)
	_ ranged.MutViewer[int]  = (*ArrayList[int])(nil)
)

// 动态数组适配，零值即可使用
type ArrayList[T any] struct {
	items []T
}

func NewArrayList[T any](capacity int) *ArrayList[T] {
	return &ArrayList[T]{items: make([]T, 0, capacity)}
}

func (l *ArrayList[T]) Size() int { return len(l.items) }

func (l *ArrayList[T]) IsEmpty() bool { return len(l.items) == 0 }

func (l *ArrayList[T]) Push(val T) {
	l.items = append(l.items, val)
}

func (l *ArrayList[T]) PushAll(vals ...T) {
	l.items = append(l.items, vals...)
}

func (l *ArrayList[T]) Pop() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	n := len(l.items) - 1
	val := l.items[n]
	l.items[n] = zero // 释放引用，便于回收
	l.items = l.items[:n]
	return val, true
}

func (l *ArrayList[T]) Peek() (T, bool) {
	if len(l.items) == 0 {
		var zero T
		return zero, false
	}
	return l.items[len(l.items)-1], true
}

// 批量截断，替代派生实现的逐个 Pop
func (l *ArrayList[T]) ShrinkTo(size int) {
	if size < 0 {
		size = 0
	}
	if size >= len(l.items) {
		return
	}
	var zero T
	for i := size; i < len(l.items); i++ {
		l.items[i] = zero
	}
	l.items = l.items[:size]
}

func (l *ArrayList[T]) Reserve(additional int) {
	free := cap(l.items) - len(l.items)
	if additional <= free {
		return
	}
	grown := make([]T, len(l.items), len(l.items)+additional)
	copy(grown, l.items)
	l.items = grown
}

func (l *ArrayList[T]) View() []T { return l.items }

// 直接暴露底层切片。调用方只能改元素，不能改长度，见 ranged.MutViewer 的约定
func (l *ArrayList[T]) ViewMut() []T { return l.items }

func (l *ArrayList[T]) Print() {
	fmt.Println(l.items)
}
