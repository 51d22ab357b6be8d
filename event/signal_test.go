package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type owner struct{ name string }

func TestSignalPostOrder(t *testing.T) {
	s := NewSignal[int]()
	a, b := &owner{"a"}, &owner{"b"}

	var got []string
	s.Attach(a, func(v int) { got = append(got, "a") })
	s.Attach(b, func(v int) { got = append(got, "b") })
	s.Attach(a, func(v int) { got = append(got, "a2") })

	s.Post(1)
	assert.Equal(t, []string{"a", "b", "a2"}, got)
	assert.Equal(t, 3, s.ListenerCount())
}

func TestSignalZeroValue(t *testing.T) {
	var s Signal[string]
	var got string
	s.Attach(nil, func(v string) { got = v })
	s.Post("hello")
	assert.Equal(t, "hello", got)
}

func TestSignalDetachOwner(t *testing.T) {
	s := NewSignal[int]()
	a, b := &owner{"a"}, &owner{"b"}

	calls := map[string]int{}
	s.Attach(a, func(int) { calls["a"]++ })
	s.Attach(a, func(int) { calls["a"]++ })
	s.Attach(b, func(int) { calls["b"]++ })

	s.Detach(a)
	s.Detach(a)
	s.Post(0)

	assert.Equal(t, 0, calls["a"])
	assert.Equal(t, 1, calls["b"])
	assert.False(t, s.Has(a))
	assert.True(t, s.Has(b))
}

func TestSubscriptionDetachIdempotent(t *testing.T) {
	s := NewSignal[int]()
	sub := s.Attach(&owner{}, func(int) {})

	assert.True(t, sub.Detach())
	assert.False(t, sub.Detach())
	assert.Equal(t, 0, s.ListenerCount())

	var nilSub *Subscription
	assert.False(t, nilSub.Detach())
}

func TestSignalDetachWithinHandler(t *testing.T) {
	s := NewSignal[int]()
	a, b := &owner{"a"}, &owner{"b"}

	bCalls := 0
	var sub *Subscription
	sub = s.Attach(a, func(int) {
		sub.Detach()
		s.Detach(b)
	})
	s.Attach(b, func(int) { bCalls++ })

	s.Post(1)
	assert.Equal(t, 0, bCalls, "detached during post must not be called")
	assert.Equal(t, 0, s.ListenerCount())
}

func TestSignalAttachWithinHandler(t *testing.T) {
	s := NewSignal[int]()
	a := &owner{"a"}

	late := 0
	s.Attach(a, func(int) {
		if late == 0 && s.ListenerCount() == 1 {
			s.Attach(a, func(int) { late++ })
		}
	})

	s.Post(1)
	assert.Equal(t, 0, late, "attached during post starts with the next post")
	s.Post(2)
	assert.Equal(t, 1, late)
}

func TestSignalListenersChanged(t *testing.T) {
	s := NewSignal[struct{}]()
	var counts []int
	s.OnListenersChanged(func() { counts = append(counts, s.ListenerCount()) })

	a := &owner{}
	sub := s.Attach(a, func(struct{}) {})
	s.Attach(a, func(struct{}) {})
	sub.Detach()
	sub.Detach()
	s.Detach(a)
	s.Detach(a)

	require.Equal(t, []int{1, 2, 1, 0}, counts)
}
