// internal/input/dispatcher.go
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/loom/internal/logger"
)

// Scope says where a bound handler applies.
type Scope int

const (
	// ScopeGlobal handlers fire anywhere in the application.
	ScopeGlobal Scope = iota
	// ScopeTextArea handlers fire only while a text-editing area has focus,
	// shadowing the text area's own default behavior for the chord.
	ScopeTextArea
)

// Precedence controls which scope is consulted first while a text area has
// focus. Toolkits disagree on this ordering, so it is policy, not code.
type Precedence int

const (
	// PrecedenceLocalFirst consults text-area handlers before global ones.
	// This is the default: it guarantees a bound action stays reachable
	// inside text areas that would otherwise swallow the chord.
	PrecedenceLocalFirst Precedence = iota
	// PrecedenceGlobalFirst consults global handlers first everywhere.
	PrecedenceGlobalFirst
)

// ParsePrecedence maps a config string to a Precedence value.
func ParsePrecedence(name string) Precedence {
	if name == "global-first" {
		return PrecedenceGlobalFirst
	}
	return PrecedenceLocalFirst
}

// HandlerFunc is invoked when a bound chord fires. It returns true when the
// event was consumed; false lets the event keep propagating, exactly as if
// no handler were installed.
type HandlerFunc func() bool

// Dispatcher routes key events to handlers bound per chord and scope.
type Dispatcher struct {
	precedence Precedence
	bindings   map[Scope]map[Chord][]HandlerFunc
}

// NewDispatcher creates an empty dispatcher with local-first precedence.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		precedence: PrecedenceLocalFirst,
		bindings: map[Scope]map[Chord][]HandlerFunc{
			ScopeGlobal:   make(map[Chord][]HandlerFunc),
			ScopeTextArea: make(map[Chord][]HandlerFunc),
		},
	}
}

// SetPrecedence changes the scope consult order for text-area dispatch.
func (d *Dispatcher) SetPrecedence(p Precedence) {
	d.precedence = p
}

// Bind installs handler for chord in the given scope. Multiple handlers may
// share a chord; earlier bindings are tried first.
func (d *Dispatcher) Bind(scope Scope, chord Chord, handler HandlerFunc) {
	d.bindings[scope][chord] = append(d.bindings[scope][chord], handler)
	logger.Debugf("Dispatcher: bound %s (scope %d)", chord, scope)
}

// HandleKey dispatches a key event. inTextArea reports whether a
// text-editing area currently has focus. Returns true when some handler
// consumed the event; false means the caller should let the event fall
// through to default processing.
func (d *Dispatcher) HandleKey(ev *tcell.EventKey, inTextArea bool) bool {
	chord := ChordFromEvent(ev)
	for _, scope := range d.scopeOrder(inTextArea) {
		for _, handler := range d.bindings[scope][chord] {
			if handler() {
				return true
			}
		}
	}
	return false
}

func (d *Dispatcher) scopeOrder(inTextArea bool) []Scope {
	if !inTextArea {
		return []Scope{ScopeGlobal}
	}
	if d.precedence == PrecedenceGlobalFirst {
		return []Scope{ScopeGlobal, ScopeTextArea}
	}
	return []Scope{ScopeTextArea, ScopeGlobal}
}
