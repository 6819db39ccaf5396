package collection

import (
	"container/list"

	"github.com/sooomo/ranged"
)

var (
	_ ranged.Collection[int] = (*LinkList[int])(nil)
	_ ranged.Viewer[int]     = (*LinkList[int])(nil)
)

// 双向链表适配，包装 container/list，零值即可使用。
// 只提供原语，批量操作走 ranged 包的派生实现；链表没有容量概念，不实现 Reservable
type LinkList[T any] struct {
	inner list.List
}

func (l *LinkList[T]) Size() int { return l.inner.Len() }

func (l *LinkList[T]) IsEmpty() bool { return l.inner.Len() == 0 }

func (l *LinkList[T]) Push(val T) {
	l.inner.PushBack(val)
}

func (l *LinkList[T]) Pop() (T, bool) {
	back := l.inner.Back()
	if back == nil {
		var zero T
		return zero, false
	}
	l.inner.Remove(back)
	return back.Value.(T), true
}

// 快照式只读视图，从头到尾
func (l *LinkList[T]) View() []T {
	out := make([]T, 0, l.inner.Len())
	for e := l.inner.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(T))
	}
	return out
}
