package domain

// Shared — ссылка на значение, которым владеет кто-то другой.
// Копирование Shared копирует ссылку, а не само значение.
type Shared[T any] struct {
	ptr *T
}

func Share[T any](v *T) Shared[T] {
	return Shared[T]{ptr: v}
}

func (s Shared[T]) Get() *T {
	return s.ptr
}
