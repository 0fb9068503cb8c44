package state

// Listener receives a copy of the collection after every change.
type Listener[T any] func(items []T)

// Listeners is an ordered list of listeners. It is not safe for concurrent
// use on its own; owners serialize Add and Notify with their own lock.
type Listeners[T any] struct {
	fns []Listener[T]
}

// Add registers fn. Listeners are invoked in the order they were added.
func (l *Listeners[T]) Add(fn Listener[T]) {
	if fn == nil {
		return
	}
	l.fns = append(l.fns, fn)
}

// Len returns the number of registered listeners.
func (l *Listeners[T]) Len() int {
	return len(l.fns)
}

// Notify invokes every listener synchronously. Each listener gets its own
// copy of items so it can't disturb the owner or the listeners after it.
func (l *Listeners[T]) Notify(items []T) {
	for _, fn := range l.fns {
		fn(Copy(items))
	}
}

// Copy returns a shallow copy of items. A nil input yields an empty, non-nil slice.
func Copy[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
