package collection

import "github.com/sooomo/ranged"

var (
	_ ranged.Collection[int] = (*Deque[int])(nil)
	_ ranged.Shrinkable      = (*Deque[int])(nil)
	_ ranged.Reservable      = (*Deque[int])(nil)
	_ ranged.Viewer[int]     = (*Deque[int])(nil)
	_ ranged.MutViewer[int]  = (*Deque[int])(nil)
)

// 环形缓冲双端队列，零值即可使用。
// 线性集合语义的"尾"是队尾：Push/Pop 等价于 PushBack/PopBack
type Deque[T any] struct {
	buf  []T
	head int
	size int
}

func NewDeque[T any](capacity int) *Deque[T] {
	return &Deque[T]{buf: make([]T, capacity)}
}

func (d *Deque[T]) Size() int { return d.size }

func (d *Deque[T]) IsEmpty() bool { return d.size == 0 }

func (d *Deque[T]) Push(val T) { d.PushBack(val) }

func (d *Deque[T]) Pop() (T, bool) { return d.PopBack() }

func (d *Deque[T]) PushBack(val T) {
	d.grow(1)
	d.buf[(d.head+d.size)%len(d.buf)] = val
	d.size++
}

func (d *Deque[T]) PushFront(val T) {
	d.grow(1)
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = val
	d.size++
}

func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	i := (d.head + d.size - 1) % len(d.buf)
	val := d.buf[i]
	d.buf[i] = zero
	d.size--
	return val, true
}

func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	val := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return val, true
}

func (d *Deque[T]) ShrinkTo(size int) {
	if size < 0 {
		size = 0
	}
	var zero T
	for d.size > size {
		i := (d.head + d.size - 1) % len(d.buf)
		d.buf[i] = zero
		d.size--
	}
}

func (d *Deque[T]) Reserve(additional int) {
	if additional > 0 {
		d.grow(additional)
	}
}

// 快照式只读视图，按队头到队尾的顺序
func (d *Deque[T]) View() []T {
	out := make([]T, d.size)
	d.copyTo(out)
	return out
}

// 先旋转成连续布局再暴露底层存储，元素顺序为队头到队尾
func (d *Deque[T]) ViewMut() []T {
	if d.head+d.size > len(d.buf) {
		buf := make([]T, len(d.buf))
		d.copyTo(buf)
		d.buf = buf
		d.head = 0
	}
	return d.buf[d.head : d.head+d.size]
}

func (d *Deque[T]) grow(need int) {
	if d.size+need <= len(d.buf) {
		return
	}
	capacity := len(d.buf) * 2
	if capacity < d.size+need {
		capacity = d.size + need
	}
	if capacity < 8 {
		capacity = 8
	}
	buf := make([]T, capacity)
	d.copyTo(buf)
	d.buf = buf
	d.head = 0
}

func (d *Deque[T]) copyTo(buf []T) {
	if d.size == 0 {
		return
	}
	end := d.head + d.size
	if end <= len(d.buf) {
		copy(buf, d.buf[d.head:end])
		return
	}
	n := copy(buf, d.buf[d.head:])
	copy(buf[n:], d.buf[:end-len(d.buf)])
}
