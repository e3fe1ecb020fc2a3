package gesture

// Handle allows removing a registered gesture callback.
type Handle struct {
	id     uint32
	remove func(uint32)
}

// Remove unregisters this callback so it no longer fires.
func (h Handle) Remove() {
	if h.remove != nil {
		h.remove(h.id)
	}
}

type handler[T any] struct {
	id uint32
	fn func(T)
}

// handlerList is an ordered callback registry for one gesture type.
// Entries are removed from the slice to avoid nil iteration waste.
type handlerList[T any] struct {
	entries []handler[T]
}

func (l *handlerList[T]) add(id uint32, fn func(T)) {
	l.entries = append(l.entries, handler[T]{id: id, fn: fn})
}

func (l *handlerList[T]) removeByID(id uint32) {
	s := l.entries
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			l.entries = s[:len(s)-1]
			return
		}
	}
}

func (l *handlerList[T]) fire(ctx T) {
	for _, h := range l.entries {
		h.fn(ctx)
	}
}

// handlerRegistry holds the per-gesture callback lists for one Recognizer.
type handlerRegistry struct {
	sessionStart handlerList[StartContext]
	tap          handlerList[TapContext]
	doubleTap    handlerList[TapContext]
	longPress    handlerList[LongPressContext]
	swipe        handlerList[SwipeContext]
	pinch        handlerList[PinchContext]
	rotate       handlerList[RotateContext]
	nextID       uint32
}

// --- Registration ---

// OnSessionStart registers a callback fired on every contact start.
// Intended for feedback effects; no classification has happened yet.
func (r *Recognizer) OnSessionStart(fn func(StartContext)) Handle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.sessionStart.add(id, fn)
	return Handle{id: id, remove: r.handlers.sessionStart.removeByID}
}

// OnTap registers a callback for tap gestures.
func (r *Recognizer) OnTap(fn func(TapContext)) Handle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.tap.add(id, fn)
	return Handle{id: id, remove: r.handlers.tap.removeByID}
}

// OnDoubleTap registers a callback for double-tap gestures. A double tap
// replaces the second tap: the tap callback does not fire for it.
func (r *Recognizer) OnDoubleTap(fn func(TapContext)) Handle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.doubleTap.add(id, fn)
	return Handle{id: id, remove: r.handlers.doubleTap.removeByID}
}

// OnLongPress registers a callback for long-press gestures.
func (r *Recognizer) OnLongPress(fn func(LongPressContext)) Handle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.longPress.add(id, fn)
	return Handle{id: id, remove: r.handlers.longPress.removeByID}
}

// OnSwipe registers a callback for swipe gestures.
func (r *Recognizer) OnSwipe(fn func(SwipeContext)) Handle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.swipe.add(id, fn)
	return Handle{id: id, remove: r.handlers.swipe.removeByID}
}

// OnPinch registers a callback fired continuously while two contacts move.
func (r *Recognizer) OnPinch(fn func(PinchContext)) Handle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pinch.add(id, fn)
	return Handle{id: id, remove: r.handlers.pinch.removeByID}
}

// OnRotate registers a callback fired continuously while two contacts move
// and rotation tracking is enabled.
func (r *Recognizer) OnRotate(fn func(RotateContext)) Handle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.rotate.add(id, fn)
	return Handle{id: id, remove: r.handlers.rotate.removeByID}
}
