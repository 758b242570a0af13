package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchReachesSubscribers(t *testing.T) {
	m := NewManager()

	var paths []string
	m.Subscribe(TypeActionNew, func(e Event) bool {
		paths = append(paths, e.Data.(ActionData).Path)
		return false
	})

	m.Dispatch(TypeActionNew, ActionData{Path: "File/Save"})
	m.Dispatch(TypeActionNew, ActionData{Path: "File/Quit"})

	assert.Equal(t, []string{"File/Save", "File/Quit"}, paths)
}

func TestDispatchOnlyMatchingType(t *testing.T) {
	m := NewManager()

	calls := 0
	m.Subscribe(TypeActionEnabled, func(Event) bool {
		calls++
		return false
	})

	m.Dispatch(TypeActionDisabled, ActionData{Path: "x"})
	assert.Zero(t, calls)

	m.Dispatch(TypeActionEnabled, ActionData{Path: "x"})
	assert.Equal(t, 1, calls)
}

func TestDispatchWithNoSubscribers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() {
		m.Dispatch(TypeTabChanged, TabChangedData{Type: "text"})
	})
}

func TestSubscriberOrderPreserved(t *testing.T) {
	m := NewManager()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		m.Subscribe(TypeAppReady, func(Event) bool {
			order = append(order, i)
			return false
		})
	}

	m.Dispatch(TypeAppReady, AppReadyData{})
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestHandlerMaySubscribeDuringDispatch(t *testing.T) {
	m := NewManager()

	late := 0
	m.Subscribe(TypeAppQuit, func(Event) bool {
		m.Subscribe(TypeAppQuit, func(Event) bool {
			late++
			return false
		})
		return false
	})

	assert.NotPanics(t, func() { m.Dispatch(TypeAppQuit, AppQuitData{}) })
	assert.Zero(t, late) // late subscriber only sees the next dispatch

	m.Dispatch(TypeAppQuit, AppQuitData{})
	assert.Equal(t, 1, late)
}
