package staticvec

// Vector is a fixed-capacity sequence container. The backing storage is
// allocated once at construction and never grows: every operation that would
// exceed the capacity reports failure instead of resizing.
//
// It is the building block the other structures in this module lean on:
// the avl arena uses one as its free list and another as the bounded stack
// of the lazy in-order traversal.
type Vector[T any] struct {
	items []T // len(items) is the current size, cap(items) never changes
}

// New returns an empty Vector able to hold up to capacity elements.
func New[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[T]{items: make([]T, 0, capacity)}
}

// Of returns a Vector with the given capacity pre-filled with init.
// It returns nil when init does not fit.
func Of[T any](capacity int, init ...T) *Vector[T] {
	if len(init) > capacity {
		return nil
	}
	v := New[T](capacity)
	v.items = append(v.items, init...)
	return v
}

// Len returns the number of elements currently held.
func (v *Vector[T]) Len() int { return len(v.items) }

// Cap returns the fixed capacity.
func (v *Vector[T]) Cap() int { return cap(v.items) }

// FreeSpace returns how many more elements fit.
func (v *Vector[T]) FreeSpace() int { return cap(v.items) - len(v.items) }

func (v *Vector[T]) Empty() bool { return len(v.items) == 0 }

func (v *Vector[T]) Full() bool { return len(v.items) == cap(v.items) }

// PushBack appends an element, failing when the vector is full.
func (v *Vector[T]) PushBack(item T) bool {
	if v.Full() {
		return false
	}
	v.items = append(v.items, item)
	return true
}

// PopBack removes and returns the last element. The vacated slot is zeroed
// so the vector never pins a value it no longer holds.
func (v *Vector[T]) PopBack() (T, bool) {
	var zero T
	n := len(v.items)
	if n == 0 {
		return zero, false
	}
	item := v.items[n-1]
	v.items[n-1] = zero
	v.items = v.items[:n-1]
	return item, true
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, bool) {
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}
	return v.items[0], true
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, bool) {
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}
	return v.items[len(v.items)-1], true
}

// At returns the element at pos with a bounds check.
func (v *Vector[T]) At(pos int) (T, bool) {
	if pos < 0 || pos >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[pos], true
}

// Set replaces the element at pos with a bounds check.
func (v *Vector[T]) Set(pos int, item T) bool {
	if pos < 0 || pos >= len(v.items) {
		return false
	}
	v.items[pos] = item
	return true
}

// Insert places item at pos, shifting the tail right. O(n).
func (v *Vector[T]) Insert(pos int, item T) bool {
	if v.Full() || pos < 0 || pos > len(v.items) {
		return false
	}
	var zero T
	v.items = append(v.items, zero)
	copy(v.items[pos+1:], v.items[pos:])
	v.items[pos] = item
	return true
}

// Erase removes the element at pos, shifting the tail left. O(n).
func (v *Vector[T]) Erase(pos int) bool {
	n := len(v.items)
	if pos < 0 || pos >= n {
		return false
	}
	copy(v.items[pos:], v.items[pos+1:])
	var zero T
	v.items[n-1] = zero
	v.items = v.items[:n-1]
	return true
}

// Resize grows the vector with copies of fill or truncates it, failing when
// count exceeds the capacity.
func (v *Vector[T]) Resize(count int, fill T) bool {
	if count < 0 || count > cap(v.items) {
		return false
	}
	for len(v.items) < count {
		v.items = append(v.items, fill)
	}
	if count < len(v.items) {
		var zero T
		for i := count; i < len(v.items); i++ {
			v.items[i] = zero
		}
		v.items = v.items[:count]
	}
	return true
}

// Clear removes every element, keeping the capacity.
func (v *Vector[T]) Clear() {
	var zero T
	for i := range v.items {
		v.items[i] = zero
	}
	v.items = v.items[:0]
}

// Values exposes the live elements as a slice view. Indexing it performs no
// extra bounds check beyond the runtime's; mutations are visible to the
// vector.
func (v *Vector[T]) Values() []T { return v.items }
