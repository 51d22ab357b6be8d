package event

import "github.com/elliotchance/orderedmap/v2"

// Handler receives the payload of a posted signal.
type Handler[T any] func(T)

// key identifies one subscription: the owner that attached it plus a sequence
// number, so an owner may hold several handlers on the same signal.
type key struct {
	owner any
	seq   uint64
}

// Signal is a synchronous typed publish/subscribe channel. Handlers run in
// attach order on the goroutine that calls Post.
//
// A handler detached while a post is in flight is not called for the rest of
// that post. A handler attached while a post is in flight is first called on
// the next post.
type Signal[T any] struct {
	listeners *orderedmap.OrderedMap[key, Handler[T]]
	seq       uint64
	changed   []func()
}

// NewSignal creates an empty signal.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{listeners: orderedmap.NewOrderedMap[key, Handler[T]]()}
}

func (s *Signal[T]) table() *orderedmap.OrderedMap[key, Handler[T]] {
	if s.listeners == nil {
		s.listeners = orderedmap.NewOrderedMap[key, Handler[T]]()
	}
	return s.listeners
}

// Attach registers h on behalf of owner. Owner must be comparable; a pointer
// to the subscribing value is the usual choice.
func (s *Signal[T]) Attach(owner any, h Handler[T]) *Subscription {
	s.seq++
	k := key{owner: owner, seq: s.seq}
	s.table().Set(k, h)
	s.notifyChanged()

	return &Subscription{detach: func() bool {
		if !s.table().Delete(k) {
			return false
		}
		s.notifyChanged()
		return true
	}}
}

// Detach removes every handler attached by owner. Detaching an owner with no
// handlers is a no-op.
func (s *Signal[T]) Detach(owner any) {
	var stale []key
	for el := s.table().Front(); el != nil; el = el.Next() {
		if el.Key.owner == owner {
			stale = append(stale, el.Key)
		}
	}
	if len(stale) == 0 {
		return
	}
	for _, k := range stale {
		s.table().Delete(k)
	}
	s.notifyChanged()
}

// Has reports whether owner has at least one handler attached.
func (s *Signal[T]) Has(owner any) bool {
	for el := s.table().Front(); el != nil; el = el.Next() {
		if el.Key.owner == owner {
			return true
		}
	}
	return false
}

// ListenerCount returns the number of attached handlers.
func (s *Signal[T]) ListenerCount() int {
	return s.table().Len()
}

// Post delivers v to every handler attached when the post starts.
func (s *Signal[T]) Post(v T) {
	if s.table().Len() == 0 {
		return
	}

	keys := make([]key, 0, s.listeners.Len())
	for el := s.listeners.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}

	for _, k := range keys {
		h, ok := s.listeners.Get(k)
		if !ok {
			continue
		}
		h(v)
	}
}

// OnListenersChanged registers fn to run after every attach or effective
// detach.
func (s *Signal[T]) OnListenersChanged(fn func()) {
	s.changed = append(s.changed, fn)
}

func (s *Signal[T]) notifyChanged() {
	for _, fn := range s.changed {
		fn()
	}
}

// Subscription is the handle returned by Attach.
type Subscription struct {
	detach func() bool
}

// Detach removes the handler. It is safe to call more than once and from
// within the handler itself. Reports whether the handler was still attached.
func (sub *Subscription) Detach() bool {
	if sub == nil || sub.detach == nil {
		return false
	}
	return sub.detach()
}
