package ranged

// 可变视图能力：在不改变集合长度的前提下原地修改元素。
//
// 实现约定（编译器不做检查）：通过返回的切片只允许修改元素值，
// 任何能经由视图改变集合长度的实现都会破坏 Ranged 的不变量
type MutViewer[T any] interface {
	ViewMut() []T
}

// 只读视图能力。实现方可以返回底层存储，也可以返回快照
type Viewer[T any] interface {
	View() []T
}
