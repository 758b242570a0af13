package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarGetSet(t *testing.T) {
	v := NewVar("lf")
	assert.Equal(t, "lf", v.Get())

	v.Set("crlf")
	assert.Equal(t, "crlf", v.Get())
}

func TestVarListenersFireOnEveryWrite(t *testing.T) {
	v := NewVar(true)

	var seen []bool
	v.Listen(func(value bool) {
		seen = append(seen, value)
	})

	v.Set(false)
	v.Set(false) // same value still notifies
	v.Set(true)

	assert.Equal(t, []bool{false, false, true}, seen)
}

func TestVarMultipleListenersInOrder(t *testing.T) {
	v := NewVar(0)

	var order []string
	v.Listen(func(int) { order = append(order, "first") })
	v.Listen(func(int) { order = append(order, "second") })

	v.Set(1)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestVarListenerMayWriteBack(t *testing.T) {
	v := NewVar(1)

	clamped := false
	v.Listen(func(value int) {
		if value > 10 && !clamped {
			clamped = true
			v.Set(10)
		}
	})

	v.Set(42)
	assert.Equal(t, 10, v.Get())
}
