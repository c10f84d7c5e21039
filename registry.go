package sable

// registry is a name-keyed store owning instances of one resource kind.
// Insertion order is irrelevant; keys are unique. All access happens on the
// engine's single-threaded context, so no locking is needed.
type registry[T any] struct {
	items map[string]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{items: make(map[string]T)}
}

func (r *registry[T]) put(name string, v T) {
	r.items[name] = v
}

func (r *registry[T]) get(name string) (T, bool) {
	v, ok := r.items[name]
	return v, ok
}

func (r *registry[T]) has(name string) bool {
	_, ok := r.items[name]
	return ok
}

func (r *registry[T]) remove(name string) bool {
	if _, ok := r.items[name]; !ok {
		return false
	}
	delete(r.items, name)
	return true
}

func (r *registry[T]) clear() {
	r.items = make(map[string]T)
}

func (r *registry[T]) len() int {
	return len(r.items)
}

// each calls fn for every entry. Mutating the registry from fn is not
// allowed.
func (r *registry[T]) each(fn func(name string, v T)) {
	for name, v := range r.items {
		fn(name, v)
	}
}
