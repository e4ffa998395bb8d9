package panzoom

type handler[T any] struct {
	id uint32
	fn func(T)
}

// handlerList is an ordered set of callbacks for one event kind.
type handlerList[T any] struct {
	entries []handler[T]
	nextID  uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters this callback so it no longer fires.
// Calling Remove on a zero handle or more than once is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

func (l *handlerList[T]) add(fn func(T)) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, handler[T]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: l.remove}
}

// remove drops the entry from the slice to avoid nil iteration waste.
func (l *handlerList[T]) remove(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			copy(l.entries[i:], l.entries[i+1:])
			l.entries[len(l.entries)-1] = handler[T]{}
			l.entries = l.entries[:len(l.entries)-1]
			return
		}
	}
}

func (l *handlerList[T]) fire(v T) {
	for _, h := range l.entries {
		h.fn(v)
	}
}

func (l *handlerList[T]) len() int {
	return len(l.entries)
}
