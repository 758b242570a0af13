// internal/action/registry.go
package action

import (
	"fmt"
	"strings"

	"github.com/bethropolis/loom/internal/event"
	"github.com/bethropolis/loom/internal/input"
	"github.com/bethropolis/loom/internal/logger"
	"github.com/bethropolis/loom/internal/observe"
	"github.com/bethropolis/loom/internal/tab"
)

// Registry owns the path-to-action mapping. It is created once by the host
// and passed to every collaborator; actions are registered for the process
// lifetime and never removed.
type Registry struct {
	events *event.Manager
	tabs   *tab.Manager
	keys   *input.Dispatcher

	actions map[string]*Action
	order   []string
}

// Config holds dependencies for the Registry.
type Config struct {
	Events *event.Manager
	Tabs   *tab.Manager
	Keys   *input.Dispatcher
}

// New creates a Registry. All dependencies are required.
func New(cfg Config) *Registry {
	if cfg.Events == nil || cfg.Tabs == nil || cfg.Keys == nil {
		panic("action.New: Missing required dependencies in Config")
	}
	return &Registry{
		events:  cfg.Events,
		tabs:    cfg.Tabs,
		keys:    cfg.Keys,
		actions: make(map[string]*Action),
	}
}

// options collects the optional parameters of the Add calls. Which fields
// are legal depends on the action kind being registered.
type options struct {
	binding       string
	tabTypes      []tab.Type
	hasTabTypes   bool
	defaultBool   *bool
	boolVar       *observe.Var[bool]
	defaultChoice *string
	choiceVar     *observe.Var[string]
}

// Option configures an Add call.
type Option func(*options)

// WithBinding attaches a keyboard shortcut descriptor (e.g. "Ctrl+S").
// Legal for Command and YesNo actions only.
func WithBinding(descriptor string) Option {
	return func(o *options) { o.binding = descriptor }
}

// WithTabTypes makes enablement track the focused tab: the action is enabled
// exactly while the focused tab's type is in types. Include tab.TypeNone to
// keep the action enabled when no tab has focus.
func WithTabTypes(types ...tab.Type) Option {
	return func(o *options) {
		o.tabTypes = types
		o.hasTabTypes = true
	}
}

// WithDefaultBool supplies the initial value of a YesNo action. When
// combined with WithBoolVar it overwrites the cell's current value.
func WithDefaultBool(value bool) Option {
	return func(o *options) { o.defaultBool = &value }
}

// WithBoolVar shares an existing boolean cell with a YesNo action.
func WithBoolVar(v *observe.Var[bool]) Option {
	return func(o *options) { o.boolVar = v }
}

// WithDefaultChoice supplies the initial selection of a Choice action. Must
// be a member of the declared choices.
func WithDefaultChoice(value string) Option {
	return func(o *options) { o.defaultChoice = &value }
}

// WithChoiceVar shares an existing selection cell with a Choice action. Its
// current value must be a member of the declared choices.
func WithChoiceVar(v *observe.Var[string]) Option {
	return func(o *options) { o.choiceVar = v }
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// AddCommand registers a fire-and-forget action that runs callback when
// invoked.
func (r *Registry) AddCommand(path string, callback func(), opts ...Option) (*Action, error) {
	o := collect(opts)
	if callback == nil {
		return nil, fmt.Errorf("%w: command %q needs a callback", ErrConfiguration, path)
	}
	if o.defaultBool != nil || o.boolVar != nil || o.defaultChoice != nil || o.choiceVar != nil {
		return nil, fmt.Errorf("%w: command %q takes no value options", ErrConfiguration, path)
	}

	a := &Action{
		path:     path,
		kind:     KindCommand,
		callback: callback,
	}
	return r.addAny(a, o)
}

// AddYesNo registers a boolean toggle action. The initial value comes from
// WithDefaultBool, WithBoolVar, or both (the default overwrites the shared
// cell); supplying neither is a configuration error.
func (r *Registry) AddYesNo(path string, opts ...Option) (*Action, error) {
	o := collect(opts)
	if o.defaultChoice != nil || o.choiceVar != nil {
		return nil, fmt.Errorf("%w: yesno %q takes no choice options", ErrConfiguration, path)
	}

	v := o.boolVar
	if v == nil {
		if o.defaultBool == nil {
			return nil, fmt.Errorf("%w: yesno %q needs a default or a shared var", ErrConfiguration, path)
		}
		v = observe.NewVar(*o.defaultBool)
	} else if o.defaultBool != nil {
		v.Set(*o.defaultBool)
	}

	a := &Action{
		path:    path,
		kind:    KindYesNo,
		boolVar: v,
	}
	return r.addAny(a, o)
}

// AddChoice registers a multi-choice selection action over choices. The
// initial selection resolves as: the shared cell's current value if one is
// given (it must be a member of choices), overridden by WithDefaultChoice if
// given (must also be a member), falling back to choices[0] when neither is
// supplied. Choice actions cannot carry a binding.
func (r *Registry) AddChoice(path string, choices []string, opts ...Option) (*Action, error) {
	o := collect(opts)
	if o.defaultBool != nil || o.boolVar != nil {
		return nil, fmt.Errorf("%w: choice %q takes no bool options", ErrConfiguration, path)
	}
	if o.binding != "" {
		return nil, fmt.Errorf("%w: choice %q cannot have a binding", ErrConfiguration, path)
	}
	if len(choices) == 0 {
		return nil, fmt.Errorf("%w: choice %q needs a non-empty choice list", ErrConfiguration, path)
	}

	v := o.choiceVar
	if v == nil {
		value := choices[0]
		if o.defaultChoice != nil {
			if !contains(choices, *o.defaultChoice) {
				return nil, fmt.Errorf("%w: choice %q default %q", ErrInvalidChoice, path, *o.defaultChoice)
			}
			value = *o.defaultChoice
		}
		v = observe.NewVar(value)
	} else {
		if !contains(choices, v.Get()) {
			return nil, fmt.Errorf("%w: choice %q var holds %q", ErrInvalidChoice, path, v.Get())
		}
		if o.defaultChoice != nil {
			if !contains(choices, *o.defaultChoice) {
				return nil, fmt.Errorf("%w: choice %q default %q", ErrInvalidChoice, path, *o.defaultChoice)
			}
			v.Set(*o.defaultChoice)
		}
	}

	a := &Action{
		path:      path,
		kind:      KindChoice,
		choiceVar: v,
		choices:   choices,
	}

	if _, err := r.addAny(a, o); err != nil {
		return nil, err
	}

	// Out-of-choices writes are reported, never rejected; whoever shares the
	// cell keeps full write access to it.
	v.Listen(func(value string) {
		if !contains(a.choices, value) {
			logger.Warnf("action %q: value set to %q which is not one of the choices", a.path, value)
		}
	})

	return a, nil
}

// addAny funnels every registration through the shared checks and wiring.
func (r *Registry) addAny(a *Action, o options) (*Action, error) {
	if strings.HasPrefix(a.path, "/") || strings.HasSuffix(a.path, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, a.path)
	}
	if _, exists := r.actions[a.path]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, a.path)
	}

	a.binding = o.binding
	a.enabled = true
	a.events = r.events

	var chord input.Chord
	if o.binding != "" {
		var err error
		chord, err = input.ParseBinding(o.binding)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrConfiguration, a.path, err)
		}
	}

	r.actions[a.path] = a
	r.order = append(r.order, a.path)

	// The new-action event goes out before any enablement computation so
	// subscribers can react to the action before it settles into a possibly
	// disabled state.
	r.events.Dispatch(event.TypeActionNew, event.ActionData{Path: a.path})

	if o.hasTabTypes {
		types := o.tabTypes
		recompute := func() {
			a.SetEnabled(containsType(types, r.tabs.FocusedType()))
		}
		recompute()
		r.events.Subscribe(event.TypeTabChanged, func(event.Event) bool {
			recompute()
			return false
		})
	}

	if o.binding != "" {
		handler := func() bool {
			if !a.Enabled() {
				// Let the chord keep propagating, as if unbound.
				return false
			}
			logger.Debugf("action %q: invoked via %s", a.path, a.binding)
			a.Invoke()
			return true
		}
		// The text-area binding shadows any default text-area behavior for
		// the chord; the global one covers everything else.
		r.keys.Bind(input.ScopeGlobal, chord, handler)
		r.keys.Bind(input.ScopeTextArea, chord, handler)
	}

	logger.Debugf("Registry: registered %s action %q", a.kind, a.path)
	return a, nil
}

// Get looks up an action by exact path, after trimming one trailing '/'.
func (r *Registry) Get(path string) (*Action, error) {
	a, ok := r.actions[strings.TrimSuffix(path, "/")]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	return a, nil
}

// All returns every registered action in registration order.
func (r *Registry) All() []*Action {
	out := make([]*Action, 0, len(r.order))
	for _, path := range r.order {
		out = append(out, r.actions[path])
	}
	return out
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func containsType(list []tab.Type, value tab.Type) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
