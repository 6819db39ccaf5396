// rangedtest 为 Collection 的实现方提供可复用的一致性测试套件。
// 实现一个新的适配器后，在它的测试里调用 Collection 与 Ranged 即可
package rangedtest

import (
	"errors"
	"math"
	"testing"

	"github.com/sooomo/ranged"
)

// 对任意 Collection 实现运行一致性测试。
// newC 每次调用必须返回一个新的空集合；gen 按序号生成可区分的元素值
func Collection[T comparable, C ranged.Collection[T]](t *testing.T, newC func() C, gen func(i int) T) {
	fill := func() T { return gen(0) }

	t.Run("pop_after_push", func(t *testing.T) {
		c := newC()
		c.Push(gen(1))
		c.Push(gen(2))
		if val, ok := c.Pop(); !ok || val != gen(2) {
			t.Errorf("Pop() = %v, %v, want %v, true", val, ok, gen(2))
		}
		if val, ok := c.Pop(); !ok || val != gen(1) {
			t.Errorf("Pop() = %v, %v, want %v, true", val, ok, gen(1))
		}
		if _, ok := c.Pop(); ok {
			t.Errorf("Pop() on empty: ok = true, want false")
		}
	})

	t.Run("extend_to", func(t *testing.T) {
		c := newC()
		ranged.ExtendTo[T](c, 10, fill)
		if sz := c.Size(); sz != 10 {
			t.Errorf("size = %v, want 10", sz)
		}
		// 目标不大于当前长度时不做任何事
		ranged.ExtendTo[T](c, 4, fill)
		if sz := c.Size(); sz != 10 {
			t.Errorf("size = %v, want 10", sz)
		}
	})

	t.Run("extend_calls_fill_per_slot", func(t *testing.T) {
		c := newC()
		calls := 0
		ranged.ExtendTo[T](c, 7, func() T {
			calls++
			return gen(calls)
		})
		if calls != 7 {
			t.Errorf("fill calls = %v, want 7", calls)
		}
	})

	t.Run("shrink_to", func(t *testing.T) {
		c := newC()
		ranged.ExtendTo[T](c, 10, fill)
		ranged.ShrinkTo[T](c, 4)
		if sz := c.Size(); sz != 4 {
			t.Errorf("size = %v, want 4", sz)
		}
		// 目标不小于当前长度时不做任何事
		ranged.ShrinkTo[T](c, 20)
		if sz := c.Size(); sz != 4 {
			t.Errorf("size = %v, want 4", sz)
		}
	})

	t.Run("multiple_resizes", func(t *testing.T) {
		c := newC()
		ranged.ExtendTo[T](c, 10, fill)
		ranged.ShrinkTo[T](c, 4)
		if sz := c.Size(); sz != 4 {
			t.Errorf("size = %v, want 4", sz)
		}

		ranged.ExtendTo[T](c, 15, fill)
		if sz := c.Size(); sz != 15 {
			t.Errorf("size = %v, want 15", sz)
		}

		c.Push(gen(42))
		if sz := c.Size(); sz != 16 {
			t.Errorf("size = %v, want 16", sz)
		}
		if val, ok := c.Pop(); !ok || val != gen(42) {
			t.Errorf("Pop() = %v, %v, want %v, true", val, ok, gen(42))
		}
		if val, ok := c.Pop(); !ok || val != gen(0) {
			t.Errorf("Pop() = %v, %v, want %v, true", val, ok, gen(0))
		}
		if sz := c.Size(); sz != 14 {
			t.Errorf("size = %v, want 14", sz)
		}

		ranged.ExtendTo[T](c, 100, fill)
		if sz := c.Size(); sz != 100 {
			t.Errorf("size = %v, want 100", sz)
		}
		ranged.ShrinkTo[T](c, 2)
		if sz := c.Size(); sz != 2 {
			t.Errorf("size = %v, want 2", sz)
		}
	})

	t.Run("reserve_is_safe", func(t *testing.T) {
		c := newC()
		ranged.Reserve[T](c, 16)
		if sz := c.Size(); sz != 0 {
			t.Errorf("size = %v, want 0", sz)
		}
		c.Push(gen(1))
		if sz := c.Size(); sz != 1 {
			t.Errorf("size = %v, want 1", sz)
		}
	})

	t.Run("is_empty", func(t *testing.T) {
		c := newC()
		if !ranged.IsEmpty[T](c) {
			t.Errorf("IsEmpty() = false, want true")
		}
		c.Push(gen(1))
		if ranged.IsEmpty[T](c) {
			t.Errorf("IsEmpty() = true, want false")
		}
	})
}

// 以 newC 产生的集合为底层存储，对 Ranged 包装器运行一致性测试
func Ranged[T comparable, C ranged.Collection[T]](t *testing.T, newC func() C, gen func(i int) T) {
	fill := func() T { return gen(0) }

	t.Run("empty_in_01", func(t *testing.T) {
		if _, err := ranged.New[T](newC(), 0, 1); err != nil {
			t.Errorf("New(0, 1) = %v, want nil", err)
		}
	})

	t.Run("always_empty", func(t *testing.T) {
		if _, err := ranged.New[T](newC(), 0, 0); err != nil {
			t.Errorf("New(0, 0) = %v, want nil", err)
		}
	})

	t.Run("always_empty_too_large", func(t *testing.T) {
		c := newC()
		c.Push(gen(1))
		_, err := ranged.New[T](c, 0, 0)
		if !errors.Is(err, ranged.ErrTooLarge) {
			t.Errorf("New(0, 0) = %v, want ErrTooLarge", err)
		}
		if sz := c.Size(); sz != 1 {
			t.Errorf("collection modified on failure: size = %v, want 1", sz)
		}
	})

	t.Run("too_small", func(t *testing.T) {
		c := newC()
		_, err := ranged.New[T](c, 1, 5)
		if !errors.Is(err, ranged.ErrTooSmall) {
			t.Errorf("New(1, 5) = %v, want ErrTooSmall", err)
		}
		if sz := c.Size(); sz != 0 {
			t.Errorf("collection modified on failure: size = %v, want 0", sz)
		}
	})

	t.Run("non_empty_err_on_empty", func(t *testing.T) {
		if _, err := ranged.NewNonEmpty[T](newC()); !errors.Is(err, ranged.ErrTooSmall) {
			t.Errorf("NewNonEmpty() = %v, want ErrTooSmall", err)
		}
	})

	t.Run("fit_extends_to_min", func(t *testing.T) {
		r := ranged.NewFit[T](newC(), 1, 5, fill)
		if sz := r.Size(); sz != 1 {
			t.Errorf("size = %v, want 1", sz)
		}
	})

	t.Run("fit_non_empty", func(t *testing.T) {
		r := ranged.NewFit[T](newC(), 1, math.MaxInt, fill)
		if sz := r.Size(); sz != 1 {
			t.Errorf("size = %v, want 1", sz)
		}
		if val, ok := r.Inner().Pop(); !ok || val != gen(0) {
			t.Errorf("element = %v, %v, want %v, true", val, ok, gen(0))
		}
	})

	t.Run("fit_shrinks_to_max", func(t *testing.T) {
		c := newC()
		ranged.ExtendTo[T](c, 9, fill)
		r := ranged.NewFit[T](c, 2, 5, fill)
		if sz := r.Size(); sz != 5 {
			t.Errorf("size = %v, want 5", sz)
		}
	})

	t.Run("optional_slot", func(t *testing.T) {
		r, err := ranged.New[T](newC(), 0, 1)
		if err != nil {
			t.Fatalf("New(0, 1) = %v, want nil", err)
		}
		if err := r.Push(gen(1)); err != nil {
			t.Errorf("Push() = %v, want nil", err)
		}
		if err := r.Push(gen(2)); !errors.Is(err, ranged.ErrTooLarge) {
			t.Errorf("Push() = %v, want ErrTooLarge", err)
		}
		if sz := r.Size(); sz != 1 {
			t.Errorf("size = %v, want 1", sz)
		}
	})

	t.Run("pop_refused_at_min", func(t *testing.T) {
		c := newC()
		c.Push(gen(1))
		r, err := ranged.NewNonEmpty[T](c)
		if err != nil {
			t.Fatalf("NewNonEmpty() = %v, want nil", err)
		}
		if _, ok := r.Pop(); ok {
			t.Errorf("Pop() at min: ok = true, want false")
		}
		if sz := r.Size(); sz != 1 {
			t.Errorf("size = %v, want 1", sz)
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		c := newC()
		c.Push(gen(1))
		c.Push(gen(2))
		r, err := ranged.New[T](c, 0, 10)
		if err != nil {
			t.Fatalf("New(0, 10) = %v, want nil", err)
		}
		if sz := r.Inner().Size(); sz != 2 {
			t.Errorf("inner size = %v, want 2", sz)
		}
		if back := r.IntoInner(); back.Size() != 2 {
			t.Errorf("IntoInner() size = %v, want 2", back.Size())
		}
	})
}
