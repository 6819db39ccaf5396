package collection

import "github.com/sooomo/ranged"

var (
	_ ranged.Collection[rune] = (*Runes)(nil)
	_ ranged.Shrinkable       = (*Runes)(nil)
	_ ranged.Reservable       = (*Runes)(nil)
	_ ranged.Viewer[rune]     = (*Runes)(nil)
)

// 字符缓冲，把字符串当作 rune 的线性集合来用，零值即可使用
type Runes struct {
	chars []rune
}

func NewRunes(s string) *Runes {
	return &Runes{chars: []rune(s)}
}

func (r *Runes) Size() int { return len(r.chars) }

func (r *Runes) IsEmpty() bool { return len(r.chars) == 0 }

func (r *Runes) Push(val rune) {
	r.chars = append(r.chars, val)
}

func (r *Runes) Pop() (rune, bool) {
	if len(r.chars) == 0 {
		return 0, false
	}
	n := len(r.chars) - 1
	val := r.chars[n]
	r.chars = r.chars[:n]
	return val, true
}

func (r *Runes) ShrinkTo(size int) {
	if size < 0 {
		size = 0
	}
	if size < len(r.chars) {
		r.chars = r.chars[:size]
	}
}

func (r *Runes) Reserve(additional int) {
	free := cap(r.chars) - len(r.chars)
	if additional <= free {
		return
	}
	grown := make([]rune, len(r.chars), len(r.chars)+additional)
	copy(grown, r.chars)
	r.chars = grown
}

func (r *Runes) View() []rune { return r.chars }

func (r *Runes) String() string { return string(r.chars) }

// 非空文本：长度下界为 1 的字符缓冲
type NonEmptyText = ranged.Ranged[rune, *Runes]

func NewNonEmptyText(s string) (*NonEmptyText, error) {
	return ranged.NewNonEmpty[rune](NewRunes(s))
}
